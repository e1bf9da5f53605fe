package commands

import (
	"context"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
)

// CreateSubcaseCommandHandler registers a subcase inside an existing
// container.
type CreateSubcaseCommandHandler struct {
	uowFactory SubcaseUoWFactory
}

// NewCreateSubcaseCommandHandler creates a handler for subcase registration.
func NewCreateSubcaseCommandHandler(uowFactory SubcaseUoWFactory) CreateSubcaseCommandHandler {
	return CreateSubcaseCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created subcase.
func (h *CreateSubcaseCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSubcaseCommand,
) (*container.Subcase, error) {
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

	// The container must exist before a subcase can be attached.
	if _, err := uow.ContainerRepository().Get(ctx, cmd.ContainerID()); err != nil {
		return nil, err
	}

	subcase, err := container.NewSubcase(kernel.NewUUID(), cmd.Number(), cmd.ContainerID())
	if err != nil {
		return nil, err
	}

	if err = uow.SubcaseRepository().Add(ctx, subcase); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return subcase, nil
}
