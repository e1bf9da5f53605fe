package commands

import (
	"context"

	"logistics/internal/core/domain/model/container"
)

// AdvanceContainerCommandHandler handles the generic container advance.
// The TRANSITE -> RENSEIGNE step is refused here; it belongs to the
// mark-informed operation.
type AdvanceContainerCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewAdvanceContainerCommandHandler creates a handler for container advances.
func NewAdvanceContainerCommandHandler(uowFactory ContainerUoWFactory) AdvanceContainerCommandHandler {
	return AdvanceContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the advance command and returns the updated container.
func (h *AdvanceContainerCommandHandler) Handle(
	ctx context.Context,
	cmd AdvanceContainerCommand,
) (*container.Container, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	containerRepo := uow.ContainerRepository()
	c, err := containerRepo.Get(ctx, cmd.ContainerID())
	if err != nil {
		return nil, err
	}

	if err = c.Advance(); err != nil {
		return nil, err
	}
	if err = containerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
