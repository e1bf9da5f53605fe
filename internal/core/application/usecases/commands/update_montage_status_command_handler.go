package commands

import (
	"context"

	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/order"
)

// UpdateMontageStatusResult carries the updated assembly order and the owned
// vehicle order after the cascade.
type UpdateMontageStatusResult struct {
	Montage *assembly.Montage
	Order   *order.Order
}

// UpdateMontageStatusCommandHandler moves an assembly order to a stage and
// cascades a dispatch onto the owned vehicle order. The cascade runs on every
// update, whatever the target stage.
type UpdateMontageStatusCommandHandler struct {
	uowFactory MontageUoWFactory
}

// NewUpdateMontageStatusCommandHandler creates a handler for assembly stage
// updates.
func NewUpdateMontageStatusCommandHandler(uowFactory MontageUoWFactory) UpdateMontageStatusCommandHandler {
	return UpdateMontageStatusCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the updated montage and order.
func (h *UpdateMontageStatusCommandHandler) Handle(
	ctx context.Context,
	cmd UpdateMontageStatusCommand,
) (*UpdateMontageStatusResult, error) {
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

	montageRepo := uow.MontageRepository()
	montage, err := montageRepo.Get(ctx, cmd.MontageID())
	if err != nil {
		return nil, err
	}

	if err = montage.SetStatus(cmd.Status()); err != nil {
		return nil, err
	}
	if err = montageRepo.Update(ctx, montage); err != nil {
		return nil, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, montage.Order())
	if err != nil {
		return nil, err
	}

	o.Dispatch()
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &UpdateMontageStatusResult{
		Montage: montage,
		Order:   o,
	}, nil
}
