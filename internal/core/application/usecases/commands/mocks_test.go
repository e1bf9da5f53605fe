package commands_test

import (
	"context"

	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetMany(ctx context.Context, ids []kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) CountByBatch(ctx context.Context, batchID kernel.UUID) (int64, error) {
	args := m.Called(ctx, batchID)
	return args.Get(0).(int64), args.Error(1)
}

type MockBatchRepository struct{ mock.Mock }

func (m *MockBatchRepository) Add(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Update(ctx context.Context, b *batch.Batch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBatchRepository) Get(ctx context.Context, id kernel.UUID) (*batch.Batch, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*batch.Batch), args.Error(1)
}

type MockContainerRepository struct{ mock.Mock }

func (m *MockContainerRepository) Add(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Update(ctx context.Context, c *container.Container) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContainerRepository) Get(ctx context.Context, id kernel.UUID) (*container.Container, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*container.Container), args.Error(1)
}

func (m *MockContainerRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

type MockSubcaseRepository struct{ mock.Mock }

func (m *MockSubcaseRepository) Add(ctx context.Context, s *container.Subcase) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockSubcaseRepository) Get(ctx context.Context, id kernel.UUID) (*container.Subcase, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*container.Subcase), args.Error(1)
}

func (m *MockSubcaseRepository) AddTool(ctx context.Context, tool *container.Tool) error {
	args := m.Called(ctx, tool)
	return args.Error(0)
}

type MockSparePartRepository struct{ mock.Mock }

func (m *MockSparePartRepository) Add(ctx context.Context, p *warehouse.SparePart) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockSparePartRepository) Update(ctx context.Context, p *warehouse.SparePart) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockSparePartRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.SparePart, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.SparePart), args.Error(1)
}

type MockStorageRepository struct{ mock.Mock }

func (m *MockStorageRepository) Add(ctx context.Context, s *warehouse.Storage) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockStorageRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Storage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*warehouse.Storage), args.Error(1)
}

type MockMontageRepository struct{ mock.Mock }

func (m *MockMontageRepository) Add(ctx context.Context, mo *assembly.Montage) error {
	args := m.Called(ctx, mo)
	return args.Error(0)
}

func (m *MockMontageRepository) Update(ctx context.Context, mo *assembly.Montage) error {
	args := m.Called(ctx, mo)
	return args.Error(0)
}

func (m *MockMontageRepository) Get(ctx context.Context, id kernel.UUID) (*assembly.Montage, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*assembly.Montage), args.Error(1)
}

// MockUoW satisfies every composed unit-of-work interface the handlers use.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) BatchRepository() ports.BatchRepository {
	args := m.Called()
	return args.Get(0).(ports.BatchRepository)
}

func (m *MockUoW) ContainerRepository() ports.ContainerRepository {
	args := m.Called()
	return args.Get(0).(ports.ContainerRepository)
}

func (m *MockUoW) SubcaseRepository() ports.SubcaseRepository {
	args := m.Called()
	return args.Get(0).(ports.SubcaseRepository)
}

func (m *MockUoW) SparePartRepository() ports.SparePartRepository {
	args := m.Called()
	return args.Get(0).(ports.SparePartRepository)
}

func (m *MockUoW) StorageRepository() ports.StorageRepository {
	args := m.Called()
	return args.Get(0).(ports.StorageRepository)
}

func (m *MockUoW) MontageRepository() ports.MontageRepository {
	args := m.Called()
	return args.Get(0).(ports.MontageRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockGroupUoWFactory struct{ mock.Mock }

func (m *MockGroupUoWFactory) Create() commands.GroupUoW {
	args := m.Called()
	return args.Get(0).(commands.GroupUoW)
}

type MockShippingUoWFactory struct{ mock.Mock }

func (m *MockShippingUoWFactory) Create() commands.ShippingUoW {
	args := m.Called()
	return args.Get(0).(commands.ShippingUoW)
}

type MockContainerUoWFactory struct{ mock.Mock }

func (m *MockContainerUoWFactory) Create() commands.ContainerUoW {
	args := m.Called()
	return args.Get(0).(commands.ContainerUoW)
}

type MockSubcaseUoWFactory struct{ mock.Mock }

func (m *MockSubcaseUoWFactory) Create() commands.SubcaseUoW {
	args := m.Called()
	return args.Get(0).(commands.SubcaseUoW)
}

type MockWarehouseUoWFactory struct{ mock.Mock }

func (m *MockWarehouseUoWFactory) Create() commands.WarehouseUoW {
	args := m.Called()
	return args.Get(0).(commands.WarehouseUoW)
}

type MockMontageUoWFactory struct{ mock.Mock }

func (m *MockMontageUoWFactory) Create() commands.MontageUoW {
	args := m.Called()
	return args.Get(0).(commands.MontageUoW)
}

type MockTransitUoWFactory struct{ mock.Mock }

func (m *MockTransitUoWFactory) Create() commands.TransitUoW {
	args := m.Called()
	return args.Get(0).(commands.TransitUoW)
}
