package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGroupOrdersCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	soldID := kernel.NewUUID()
	availableID := kernel.NewUUID()
	sold := restoredOrder(t, soldID, order.StatusProposition)
	sold.MarkSold()
	available := restoredOrder(t, availableID, order.StatusProposition)
	members := []*order.Order{sold, available}

	cmd, err := commands.NewGroupOrdersCommand([]kernel.UUID{soldID, availableID}, validationDate)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, cmd.OrderIDs()).Return(members, nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		batchRepo.On("Add", mock.Anything, mock.AnythingOfType("*batch.Batch")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, sold).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, available).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGroupOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, 2, result.Batch.TotalCount())
	assert.Equal(t, 1, result.Batch.SoldCount())
	assert.Equal(t, 1, result.Batch.AvailableCount())
	assert.Equal(t, batch.StatusProposition, result.Batch.Status())
	for _, member := range result.Orders {
		assert.True(t, member.Batch().IsEqual(result.Batch.ID()))
		assert.Equal(t, order.StatusValide, member.Status())
	}
	orderRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestGroupOrdersCommandHandler_Handle_NoOrdersResolved(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewGroupOrdersCommand([]kernel.UUID{kernel.NewUUID()},
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC))

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, cmd.OrderIDs()).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockGroupUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewGroupOrdersCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewGroupOrdersCommand_Validation(t *testing.T) {
	validationDate := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	t.Run("should require at least one order id", func(t *testing.T) {
		_, err := commands.NewGroupOrdersCommand(nil, validationDate)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "commandeIds")
	})

	t.Run("should require the validation date", func(t *testing.T) {
		_, err := commands.NewGroupOrdersCommand([]kernel.UUID{kernel.NewUUID()}, time.Time{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "validationDate")
	})

	t.Run("should reject unconstructed commands", func(t *testing.T) {
		var cmd commands.GroupOrdersCommand

		require.Error(t, cmd.Validate())
	})
}
