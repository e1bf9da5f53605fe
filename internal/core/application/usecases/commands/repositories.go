// Package commands contains the workflow operations that modify system
// state. Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence. Every multi-entity operation
// commits all of its writes atomically or none of them.
package commands

import (
	"context"

	"logistics/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command
// handlers. Each handler declares the narrowest composition of repositories
// it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// BatchRepoFactory provides access to the batch repository within a transaction.
	BatchRepoFactory interface {
		BatchRepository() ports.BatchRepository
	}

	// ContainerRepoFactory provides access to the container repository within a transaction.
	ContainerRepoFactory interface {
		ContainerRepository() ports.ContainerRepository
	}

	// SubcaseRepoFactory provides access to the subcase repository within a transaction.
	SubcaseRepoFactory interface {
		SubcaseRepository() ports.SubcaseRepository
	}

	// SparePartRepoFactory provides access to the spare-part repository within a transaction.
	SparePartRepoFactory interface {
		SparePartRepository() ports.SparePartRepository
	}

	// StorageRepoFactory provides access to the storage repository within a transaction.
	StorageRepoFactory interface {
		StorageRepository() ports.StorageRepository
	}

	// MontageRepoFactory provides access to the montage repository within a transaction.
	MontageRepoFactory interface {
		MontageRepository() ports.MontageRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// GroupUoW manages transactions for grouping operations that span orders
	// and batches.
	GroupUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
	}

	// GroupUoWFactory creates new grouping unit of work instances.
	GroupUoWFactory interface {
		Create() GroupUoW
	}

	// ShippingUoW manages transactions for container creation, which cascades
	// across containers, orders, and the batches the orders leave.
	ShippingUoW interface {
		TxManager
		OrderRepoFactory
		BatchRepoFactory
		ContainerRepoFactory
	}

	// ShippingUoWFactory creates new shipping unit of work instances.
	ShippingUoWFactory interface {
		Create() ShippingUoW
	}

	// ContainerUoW manages transactions for container-only operations.
	ContainerUoW interface {
		TxManager
		ContainerRepoFactory
	}

	// ContainerUoWFactory creates new container unit of work instances.
	ContainerUoWFactory interface {
		Create() ContainerUoW
	}

	// SubcaseUoW manages transactions for subcase operations, which verify
	// the owning container.
	SubcaseUoW interface {
		TxManager
		ContainerRepoFactory
		SubcaseRepoFactory
	}

	// SubcaseUoWFactory creates new subcase unit of work instances.
	SubcaseUoWFactory interface {
		Create() SubcaseUoW
	}

	// WarehouseUoW manages transactions for spare-part and storage operations.
	WarehouseUoW interface {
		TxManager
		SparePartRepoFactory
		StorageRepoFactory
	}

	// WarehouseUoWFactory creates new warehouse unit of work instances.
	WarehouseUoWFactory interface {
		Create() WarehouseUoW
	}

	// MontageUoW manages transactions for assembly operations, which cascade
	// onto the owned order.
	MontageUoW interface {
		TxManager
		MontageRepoFactory
		OrderRepoFactory
	}

	// MontageUoWFactory creates new montage unit of work instances.
	MontageUoWFactory interface {
		Create() MontageUoW
	}

	// TransitUoW manages transactions for moving a single order into a
	// selected container.
	TransitUoW interface {
		TxManager
		OrderRepoFactory
		ContainerRepoFactory
	}

	// TransitUoWFactory creates new transit unit of work instances.
	TransitUoWFactory interface {
		Create() TransitUoW
	}
)
