package commands

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/order"
)

// ErrContainerNotSelectable is returned when the target container is past
// the EN_ATTENTE stage and can no longer take orders.
var ErrContainerNotSelectable = errors.New("container is no longer selectable for loading")

// MoveOrderToTransitResult carries the loaded order and its container.
type MoveOrderToTransitResult struct {
	Order     *order.Order
	Container *container.Container
}

// MoveOrderToTransitCommandHandler loads a single order into a waiting
// container. When the caller flags the container as full it is moved to the
// CHARGE stage in the same transaction.
type MoveOrderToTransitCommandHandler struct {
	uowFactory TransitUoWFactory
}

// NewMoveOrderToTransitCommandHandler creates a handler for single-order
// loading.
func NewMoveOrderToTransitCommandHandler(uowFactory TransitUoWFactory) MoveOrderToTransitCommandHandler {
	return MoveOrderToTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the command and returns the loaded order with its
// container.
func (h *MoveOrderToTransitCommandHandler) Handle(
	ctx context.Context,
	cmd MoveOrderToTransitCommand,
) (*MoveOrderToTransitResult, error) {
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
	if !c.IsSelectable() {
		return nil, ErrContainerNotSelectable
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.AssignToContainer(c.ID()); err != nil {
		return nil, err
	}
	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if cmd.ContainerFull() {
		c.MarkLoaded()
		if err = containerRepo.Update(ctx, c); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &MoveOrderToTransitResult{
		Order:     o,
		Container: c,
	}, nil
}
