package ports

import (
	"context"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
)

// BatchRepository defines the persistence contract for grouped order batch
// aggregates.
type BatchRepository interface {
	// Add persists a new batch aggregate to storage.
	Add(ctx context.Context, aggregate *batch.Batch) error

	// Update persists changes to an existing batch aggregate.
	Update(ctx context.Context, aggregate *batch.Batch) error

	// Get retrieves a batch aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error)
}
