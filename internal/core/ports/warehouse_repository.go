package ports

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// SparePartRepository defines the persistence contract for spare part
// aggregates.
type SparePartRepository interface {
	// Add persists a new spare part.
	Add(ctx context.Context, aggregate *warehouse.SparePart) error

	// Update persists changes to an existing spare part aggregate.
	Update(ctx context.Context, aggregate *warehouse.SparePart) error

	// Get retrieves a spare part by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.SparePart, error)
}

// StorageRepository defines the persistence contract for warehouse storage
// slots.
type StorageRepository interface {
	// Add persists a new storage slot.
	Add(ctx context.Context, aggregate *warehouse.Storage) error

	// Get retrieves a storage slot by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*warehouse.Storage, error)
}
