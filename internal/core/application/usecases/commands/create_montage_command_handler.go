package commands

import (
	"context"

	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// CreateMontageCommandHandler opens an assembly order for a vehicle order
// that has reached the VERIFIER stage. The lookup treats a wrong-stage order
// the same as a missing one.
type CreateMontageCommandHandler struct {
	uowFactory MontageUoWFactory
}

// NewCreateMontageCommandHandler creates a handler for assembly-order
// creation.
func NewCreateMontageCommandHandler(uowFactory MontageUoWFactory) CreateMontageCommandHandler {
	return CreateMontageCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the created assembly order.
func (h *CreateMontageCommandHandler) Handle(
	ctx context.Context,
	cmd CreateMontageCommand,
) (*assembly.Montage, error) {
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

	o, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}
	if o.Status() != order.StatusVerifier {
		return nil, errs.NewObjectNotFoundError("order", cmd.OrderID().String())
	}

	montage, err := assembly.NewMontage(kernel.NewUUID(), cmd.ChassisNo(), cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = uow.MontageRepository().Add(ctx, montage); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return montage, nil
}
