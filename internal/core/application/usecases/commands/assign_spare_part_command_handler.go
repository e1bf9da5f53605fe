package commands

import (
	"context"

	"logistics/internal/core/domain/model/warehouse"
)

// AssignSparePartCommandHandler places a spare part into a storage slot.
type AssignSparePartCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewAssignSparePartCommandHandler creates a handler for storage assignment.
func NewAssignSparePartCommandHandler(uowFactory WarehouseUoWFactory) AssignSparePartCommandHandler {
	return AssignSparePartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated spare part.
func (h *AssignSparePartCommandHandler) Handle(
	ctx context.Context,
	cmd AssignSparePartCommand,
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

	partRepo := uow.SparePartRepository()
	part, err := partRepo.Get(ctx, cmd.PartID())
	if err != nil {
		return nil, err
	}

	storage, err := uow.StorageRepository().Get(ctx, cmd.StorageID())
	if err != nil {
		return nil, err
	}

	if err = part.AssignStorage(storage.ID()); err != nil {
		return nil, err
	}
	if err = partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return part, nil
}
