package commands

import (
	"context"

	"logistics/internal/core/domain/model/container"
)

// MarkContainerInformedCommandHandler handles the TRANSITE -> RENSEIGNE step.
type MarkContainerInformedCommandHandler struct {
	uowFactory ContainerUoWFactory
}

// NewMarkContainerInformedCommandHandler creates a handler for marking
// containers as informed.
func NewMarkContainerInformedCommandHandler(uowFactory ContainerUoWFactory) MarkContainerInformedCommandHandler {
	return MarkContainerInformedCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated container.
func (h *MarkContainerInformedCommandHandler) Handle(
	ctx context.Context,
	cmd MarkContainerInformedCommand,
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

	c.MarkInformed()
	if err = containerRepo.Update(ctx, c); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}
