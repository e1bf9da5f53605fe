package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary. Every workflow
// operation that touches more than one entity runs inside one: all of its
// writes commit together or none do. Client code must explicitly manage the
// transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// BatchRepository returns a BatchRepository bound to the current transaction.
	BatchRepository() BatchRepository

	// ContainerRepository returns a ContainerRepository bound to the current transaction.
	ContainerRepository() ContainerRepository

	// SubcaseRepository returns a SubcaseRepository bound to the current transaction.
	SubcaseRepository() SubcaseRepository

	// SparePartRepository returns a SparePartRepository bound to the current transaction.
	SparePartRepository() SparePartRepository

	// StorageRepository returns a StorageRepository bound to the current transaction.
	StorageRepository() StorageRepository

	// MontageRepository returns a MontageRepository bound to the current transaction.
	MontageRepository() MontageRepository
}
