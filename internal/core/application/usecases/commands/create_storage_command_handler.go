package commands

import (
	"context"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
)

// CreateStorageCommandHandler registers a warehouse storage slot.
type CreateStorageCommandHandler struct {
	uowFactory WarehouseUoWFactory
}

// NewCreateStorageCommandHandler creates a handler for slot registration.
func NewCreateStorageCommandHandler(uowFactory WarehouseUoWFactory) CreateStorageCommandHandler {
	return CreateStorageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created slot.
func (h *CreateStorageCommandHandler) Handle(
	ctx context.Context,
	cmd CreateStorageCommand,
) (*warehouse.Storage, error) {
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

	storage, err := warehouse.NewStorage(
		kernel.NewUUID(),
		cmd.Number(), cmd.Door(), cmd.Rack(), cmd.Level(), cmd.Case(),
	)
	if err != nil {
		return nil, err
	}

	if err = uow.StorageRepository().Add(ctx, storage); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return storage, nil
}
