package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// CreateSparePartCommandHandler registers a spare part in EN_ATTENTE stage.
type CreateSparePartCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateSparePartCommandHandler creates a handler for spare-part
// registration.
func NewCreateSparePartCommandHandler(uowFactory WarehouseUoWFactory) CreateSparePartCommandHandler {
	return CreateSparePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created spare part.
func (h *CreateSparePartCommandHandler) Handle(
	ctx context.Context,
	cmd CreateSparePartCommand,
) (*warehouse.SparePart, error) {
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

	part, err := warehouse.NewSparePart(
		kernel.NewUUID(),
		cmd.Code(), cmd.Name(), cmd.NameFr(),
		cmd.Quantity(),
		cmd.SubcaseID(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.SparePartRepository().Add(ctx, part); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return part, nil
}
