package ports

import (
	"context"

	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/kernel"
)

// MontageRepository defines the persistence contract for vehicle assembly
// order aggregates.
type MontageRepository interface {
	// Add persists a new assembly order.
	Add(ctx context.Context, aggregate *assembly.Montage) error

	// Update persists changes to an existing assembly order aggregate.
	Update(ctx context.Context, aggregate *assembly.Montage) error

	// Get retrieves an assembly order by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*assembly.Montage, error)
}
