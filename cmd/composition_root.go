package cmd

import (
	"log/slog"

	httpin "logistics/internal/adapters/in/http"
	"logistics/internal/adapters/out/notify"
	"logistics/internal/adapters/out/postgres"
	"logistics/internal/core/application/usecases/commands"
	"logistics/internal/core/application/usecases/queries"
	"logistics/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateMoveOrderToTransitCommandHandler() commands.MoveOrderToTransitCommandHandler {
	var f commands.TransitUoWFactory = FuncTransitUoWFactory(func() commands.TransitUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMoveOrderToTransitCommandHandler(f)
}

func (c *CompositionRoot) CreateGroupOrdersCommandHandler() commands.GroupOrdersCommandHandler {
	var f commands.GroupUoWFactory = FuncGroupUoWFactory(func() commands.GroupUoW {
		return c.uowFactory.Create()
	})
	return commands.NewGroupOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	var f commands.ShippingUoWFactory = FuncShippingUoWFactory(func() commands.ShippingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateContainerCommandHandler(f)
}

func (c *CompositionRoot) containerUoWFactory() commands.ContainerUoWFactory {
	return FuncContainerUoWFactory(func() commands.ContainerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateAdvanceContainerCommandHandler() commands.AdvanceContainerCommandHandler {
	return commands.NewAdvanceContainerCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) CreateMarkContainerInformedCommandHandler() commands.MarkContainerInformedCommandHandler {
	return commands.NewMarkContainerInformedCommandHandler(c.containerUoWFactory())
}

func (c *CompositionRoot) subcaseUoWFactory() commands.SubcaseUoWFactory {
	return FuncSubcaseUoWFactory(func() commands.SubcaseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSubcaseCommandHandler() commands.CreateSubcaseCommandHandler {
	return commands.NewCreateSubcaseCommandHandler(c.subcaseUoWFactory())
}

func (c *CompositionRoot) CreateAddToolCommandHandler() commands.AddToolCommandHandler {
	return commands.NewAddToolCommandHandler(c.subcaseUoWFactory())
}

func (c *CompositionRoot) warehouseUoWFactory() commands.WarehouseUoWFactory {
	return FuncWarehouseUoWFactory(func() commands.WarehouseUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateSparePartCommandHandler() commands.CreateSparePartCommandHandler {
	return commands.NewCreateSparePartCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateAssignSparePartCommandHandler() commands.AssignSparePartCommandHandler {
	return commands.NewAssignSparePartCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) CreateCreateStorageCommandHandler() commands.CreateStorageCommandHandler {
	return commands.NewCreateStorageCommandHandler(c.warehouseUoWFactory())
}

func (c *CompositionRoot) montageUoWFactory() commands.MontageUoWFactory {
	return FuncMontageUoWFactory(func() commands.MontageUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateMontageCommandHandler() commands.CreateMontageCommandHandler {
	return commands.NewCreateMontageCommandHandler(c.montageUoWFactory())
}

func (c *CompositionRoot) CreateUpdateMontageStatusCommandHandler() commands.UpdateMontageStatusCommandHandler {
	return commands.NewUpdateMontageStatusCommandHandler(c.montageUoWFactory())
}

func (c *CompositionRoot) CreateGetAllBatchesQueryHandler() queries.GetAllBatchesQueryHandler {
	return queries.NewGetAllBatchesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetClientVehiclesQueryHandler() queries.GetClientVehiclesQueryHandler {
	return queries.NewGetClientVehiclesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetContainersQueryHandler() queries.GetContainersQueryHandler {
	return queries.NewGetContainersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCommercialRecipientsQueryHandler() queries.GetCommercialRecipientsQueryHandler {
	return queries.NewGetCommercialRecipientsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateNotifier() ports.Notifier {
	return notify.NewLogNotifier(c.logger)
}

// CreateHTTPServer wires every handler into the inbound HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		httpin.CommandHandlers{
			CreateOrder:           c.CreateCreateOrderCommandHandler(),
			DeleteOrder:           c.CreateDeleteOrderCommandHandler(),
			DispatchOrder:         c.CreateDispatchOrderCommandHandler(),
			MoveOrderToTransit:    c.CreateMoveOrderToTransitCommandHandler(),
			GroupOrders:           c.CreateGroupOrdersCommandHandler(),
			CreateContainer:       c.CreateCreateContainerCommandHandler(),
			AdvanceContainer:      c.CreateAdvanceContainerCommandHandler(),
			MarkContainerInformed: c.CreateMarkContainerInformedCommandHandler(),
			CreateSubcase:         c.CreateCreateSubcaseCommandHandler(),
			AddTool:               c.CreateAddToolCommandHandler(),
			CreateSparePart:       c.CreateCreateSparePartCommandHandler(),
			AssignSparePart:       c.CreateAssignSparePartCommandHandler(),
			CreateStorage:         c.CreateCreateStorageCommandHandler(),
			CreateMontage:         c.CreateCreateMontageCommandHandler(),
			UpdateMontageStatus:   c.CreateUpdateMontageStatusCommandHandler(),
		},
		httpin.QueryHandlers{
			GetAllBatches:           c.CreateGetAllBatchesQueryHandler(),
			GetClientVehicles:       c.CreateGetClientVehiclesQueryHandler(),
			GetContainers:           c.CreateGetContainersQueryHandler(),
			GetCommercialRecipients: c.CreateGetCommercialRecipientsQueryHandler(),
		},
		c.CreateNotifier(),
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncGroupUoWFactory func() commands.GroupUoW

func (f FuncGroupUoWFactory) Create() commands.GroupUoW {
	return f()
}

type FuncShippingUoWFactory func() commands.ShippingUoW

func (f FuncShippingUoWFactory) Create() commands.ShippingUoW {
	return f()
}

type FuncContainerUoWFactory func() commands.ContainerUoW

func (f FuncContainerUoWFactory) Create() commands.ContainerUoW {
	return f()
}

type FuncSubcaseUoWFactory func() commands.SubcaseUoW

func (f FuncSubcaseUoWFactory) Create() commands.SubcaseUoW {
	return f()
}

type FuncWarehouseUoWFactory func() commands.WarehouseUoW

func (f FuncWarehouseUoWFactory) Create() commands.WarehouseUoW {
	return f()
}

type FuncMontageUoWFactory func() commands.MontageUoW

func (f FuncMontageUoWFactory) Create() commands.MontageUoW {
	return f()
}

type FuncTransitUoWFactory func() commands.TransitUoW

func (f FuncTransitUoWFactory) Create() commands.TransitUoW {
	return f()
}
