package commands_test

import (
	"testing"
	"time"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func validCreateContainerCommand(t *testing.T, orderIDs []kernel.UUID) commands.CreateContainerCommand {
	t.Helper()
	cmd, err := commands.NewCreateContainerCommand("TCNU-1234567", "SEAL-99", 12,
		decimal.NewFromInt(21500), "plan", nil, nil, orderIDs)
	require.NoError(t, err)
	return cmd
}

func TestCreateContainerCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	batchID := kernel.NewUUID()

	spec, _ := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 4)
	member, err := order.RestoreOrder(orderID, nil, nil, spec,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil,
		order.StatusValide, order.FlagDisponible, &batchID, nil)
	require.NoError(t, err)

	emptiedBatch, err := batch.RestoreBatch(batchID,
		time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), 1, 0, 1, "", batch.StatusValide)
	require.NoError(t, err)

	cmd := validCreateContainerCommand(t, []kernel.UUID{orderID})

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("ExistsByNumber", mock.Anything, "TCNU-1234567").Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, cmd.OrderIDs()).Return([]*order.Order{member}, nil).Once(),
		containerRepo.On("Add", mock.Anything, mock.AnythingOfType("*container.Container")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, member).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		orderRepo.On("CountByBatch", mock.Anything, batchID).Return(int64(0), nil).Once(),
		batchRepo.On("Get", mock.Anything, batchID).Return(emptiedBatch, nil).Once(),
		batchRepo.On("Update", mock.Anything, emptiedBatch).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateContainerCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, container.StatusCharge, result.Container.Status())
	assert.True(t, member.Container().IsEqual(result.Container.ID()))
	assert.Nil(t, member.Batch())
	assert.Equal(t, batch.StatusTransite, emptiedBatch.Status())
	orderRepo.AssertExpectations(t)
	batchRepo.AssertExpectations(t)
	containerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCreateContainerCommandHandler_Handle_BatchStillHasMembers(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	batchID := kernel.NewUUID()

	spec, _ := order.NewVehicleSpec("HILUX", "BLANC", "DIESEL", "MANUELLE", 4)
	member, _ := order.RestoreOrder(orderID, nil, nil, spec,
		time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), nil,
		order.StatusValide, order.FlagDisponible, &batchID, nil)

	cmd := validCreateContainerCommand(t, []kernel.UUID{orderID})

	orderRepo := new(MockOrderRepository)
	batchRepo := new(MockBatchRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("ExistsByNumber", mock.Anything, "TCNU-1234567").Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, cmd.OrderIDs()).Return([]*order.Order{member}, nil).Once(),
		containerRepo.On("Add", mock.Anything, mock.AnythingOfType("*container.Container")).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, member).Return(nil).Once(),
		uow.On("BatchRepository").Return(batchRepo).Once(),
		orderRepo.On("CountByBatch", mock.Anything, batchID).Return(int64(2), nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateContainerCommandHandler(factory)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	batchRepo.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
	batchRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreateContainerCommandHandler_Handle_NumberConflict(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContainerCommand(t, []kernel.UUID{kernel.NewUUID()})

	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("ExistsByNumber", mock.Anything, "TCNU-1234567").Return(true, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateContainerCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, commands.ErrContainerNumberConflict)
	uow.AssertExpectations(t)
}

func TestCreateContainerCommandHandler_Handle_NoOrdersResolved(t *testing.T) {
	ctx := t.Context()
	cmd := validCreateContainerCommand(t, []kernel.UUID{kernel.NewUUID()})

	orderRepo := new(MockOrderRepository)
	containerRepo := new(MockContainerRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContainerRepository").Return(containerRepo).Once(),
		containerRepo.On("ExistsByNumber", mock.Anything, "TCNU-1234567").Return(false, nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("GetMany", mock.Anything, cmd.OrderIDs()).Return([]*order.Order{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockShippingUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateContainerCommandHandler(factory)
	result, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertExpectations(t)
}

func TestNewCreateContainerCommand_Validation(t *testing.T) {
	orderIDs := []kernel.UUID{kernel.NewUUID()}

	t.Run("should require the container number", func(t *testing.T) {
		_, err := commands.NewCreateContainerCommand("", "SEAL-99", 12,
			decimal.Zero, "", nil, nil, orderIDs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "conteneurNumber")
	})

	t.Run("should require the seal number", func(t *testing.T) {
		_, err := commands.NewCreateContainerCommand("TCNU-1234567", "", 12,
			decimal.Zero, "", nil, nil, orderIDs)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "sealNumber")
	})

	t.Run("should require at least one order id", func(t *testing.T) {
		_, err := commands.NewCreateContainerCommand("TCNU-1234567", "SEAL-99", 12,
			decimal.Zero, "", nil, nil, nil)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "commandeIds")
	})
}
