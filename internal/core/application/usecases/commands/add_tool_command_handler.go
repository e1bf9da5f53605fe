package commands

import (
	"context"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
)

// AddToolCommandHandler adds a tool line to an existing subcase.
type AddToolCommandHandler struct {
	uowFactory SubcaseUoWFactory
}

// NewAddToolCommandHandler creates a handler for tool registration.
func NewAddToolCommandHandler(uowFactory SubcaseUoWFactory) AddToolCommandHandler {
	return AddToolCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created tool.
func (h *AddToolCommandHandler) Handle(ctx context.Context, cmd AddToolCommand) (*container.Tool, error) {
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

	subcaseRepo := uow.SubcaseRepository()
	if _, err := subcaseRepo.Get(ctx, cmd.SubcaseID()); err != nil {
		return nil, err
	}

	tool, err := container.NewTool(kernel.NewUUID(), cmd.Code(), cmd.Name(), cmd.Quantity(), cmd.SubcaseID())
	if err != nil {
		return nil, err
	}

	if err = subcaseRepo.AddTool(ctx, tool); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return tool, nil
}
