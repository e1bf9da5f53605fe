package ports

import (
	"context"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
)

// ContainerRepository defines the persistence contract for shipping
// container aggregates.
type ContainerRepository interface {
	// Add persists a new container. The container number carries a unique
	// constraint; adding a duplicate returns a conflict error.
	Add(ctx context.Context, aggregate *container.Container) error

	// Update persists changes to an existing container aggregate.
	Update(ctx context.Context, aggregate *container.Container) error

	// Get retrieves a container aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*container.Container, error)

	// ExistsByNumber reports whether a container with the given container
	// number already exists.
	ExistsByNumber(ctx context.Context, number string) (bool, error)
}

// SubcaseRepository defines the persistence contract for subcases and the
// tools they hold.
type SubcaseRepository interface {
	// Add persists a new subcase.
	Add(ctx context.Context, aggregate *container.Subcase) error

	// Get retrieves a subcase by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*container.Subcase, error)

	// AddTool persists a new tool line inside a subcase.
	AddTool(ctx context.Context, aggregate *container.Tool) error
}
