package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// ErrContainerNumberConflict indicates that a container with the requested
// container number already exists.
var ErrContainerNumberConflict = errors.New("container number already exists")

// CreateContainerResult carries the created container together with the
// orders attached to it.
type CreateContainerResult struct {
	Container *container.Container
	Orders    []*order.Order
}

// CreateContainerCommandHandler handles container registration and its
// cascade: attached orders leave whatever grouped batch they belonged to,
// and a batch left with zero members advances to TRANSITE. Every write runs
// inside one transaction, so a crash can never leave an order detached from
// a batch whose status was not reconciled.
type CreateContainerCommandHandler struct {
	uowFactory ShippingUoWFactory
}

// NewCreateContainerCommandHandler creates a handler for container registration.
func NewCreateContainerCommandHandler(uowFactory ShippingUoWFactory) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the container creation command. Returns
// ErrContainerNumberConflict for a duplicate container number and a
// not-found error when none of the requested orders resolve.
func (h *CreateContainerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateContainerCommand,
) (*CreateContainerResult, error) {
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
	exists, err := containerRepo.ExistsByNumber(ctx, cmd.Number())
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrContainerNumberConflict
	}

	orderRepo := uow.OrderRepository()
	loaded, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}
	if len(loaded) == 0 {
		return nil, errs.NewObjectNotFoundError("commandeIds", cmd.OrderIDs()[0].String())
	}

	newContainer, err := container.NewContainer(
		kernel.NewUUID(),
		cmd.Number(),
		cmd.SealNumber(),
		cmd.Packages(),
		cmd.Weight(),
		cmd.StuffingMap(),
		cmd.EmbarkedAt(),
		cmd.ArrivedAt(),
	)
	if err != nil {
		return nil, err
	}

	if err = containerRepo.Add(ctx, newContainer); err != nil {
		return nil, err
	}

	// Attach the orders and remember which batches they leave.
	touchedBatches := make(map[kernel.UUID]bool)
	for _, o := range loaded {
		if batchID := o.Batch(); batchID != nil {
			touchedBatches[*batchID] = true
		}
		if err = o.AssignToContainer(newContainer.ID()); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, o); err != nil {
			return nil, err
		}
	}

	batchRepo := uow.BatchRepository()
	for batchID := range touchedBatches {
		remaining, countErr := orderRepo.CountByBatch(ctx, batchID)
		if countErr != nil {
			return nil, countErr
		}
		if remaining > 0 {
			continue
		}

		emptied, getErr := batchRepo.Get(ctx, batchID)
		if getErr != nil {
			return nil, getErr
		}
		emptied.MarkInTransit()
		if err = batchRepo.Update(ctx, emptied); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &CreateContainerResult{Container: newContainer, Orders: loaded}, nil
}
