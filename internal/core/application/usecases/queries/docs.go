// Package queries contains the read side of the application layer. Query
// handlers execute raw SQL over the GORM connection and return read models,
// bypassing the aggregate repositories.
package queries
