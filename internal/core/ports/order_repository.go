package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for vehicle order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes an order. Orders are hard-deleted; returns a not-found
	// error if the order does not exist.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetMany retrieves the orders whose identifiers are in ids. Unknown ids
	// are skipped; the result holds only the orders that resolved.
	GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error)

	// CountByBatch returns the number of orders still attached to a grouped
	// batch. Used to detect batches emptied by container shipping.
	CountByBatch(ctx context.Context, batchID kernel.UUID) (int64, error)
}
