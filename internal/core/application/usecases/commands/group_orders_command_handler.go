package commands

import (
	"context"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"
)

// GroupOrdersResult carries the created batch together with its member
// orders after grouping.
type GroupOrdersResult struct {
	Batch  *batch.Batch
	Orders []*order.Order
}

// GroupOrdersCommandHandler handles order grouping. The handler resolves the
// requested orders, derives the batch counts and summary from them, and
// attaches every member to the new batch inside one transaction, so a batch
// can never be created with half of its membership recorded.
type GroupOrdersCommandHandler struct {
	uowFactory GroupUoWFactory
}

// NewGroupOrdersCommandHandler creates a handler for order grouping.
func NewGroupOrdersCommandHandler(uowFactory GroupUoWFactory) GroupOrdersCommandHandler {
	return GroupOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the grouping command. Returns a not-found error when none
// of the requested orders resolve; orders that do resolve become members and
// move to the VALIDE stage.
func (h *GroupOrdersCommandHandler) Handle(ctx context.Context, cmd GroupOrdersCommand) (*GroupOrdersResult, error) {
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

	orderRepo := uow.OrderRepository()
	members, err := orderRepo.GetMany(ctx, cmd.OrderIDs())
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, errs.NewObjectNotFoundError("commandeIds", cmd.OrderIDs()[0].String())
	}

	newBatch, err := batch.NewBatch(kernel.NewUUID(), cmd.ValidationDate(), members)
	if err != nil {
		return nil, err
	}

	if err = uow.BatchRepository().Add(ctx, newBatch); err != nil {
		return nil, err
	}

	for _, member := range members {
		if err = member.JoinBatch(newBatch.ID()); err != nil {
			return nil, err
		}
		if err = orderRepo.Update(ctx, member); err != nil {
			return nil, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return &GroupOrdersResult{Batch: newBatch, Orders: members}, nil
}
