// Package orderrepo provides the GORM repository and data transfer objects
// for vehicle order persistence, converting between the order aggregate and
// its relational representation.
package orderrepo

import (
	"time"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. Buyer, batch and container references are nullable and indexed
// for the dashboard reads.
type OrderDTO struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	ClientID     *uuid.UUID `gorm:"type:uuid;index"`
	CompanyID    *uuid.UUID `gorm:"type:uuid;index"`
	Model        string
	Color        string
	Engine       string
	Transmission string
	Doors        int
	DeliveryDate time.Time
	Price        *decimal.Decimal `gorm:"type:decimal(12,2)"`
	Status       int              `gorm:"index"`
	Flag         int
	BatchID      *uuid.UUID `gorm:"type:uuid;index"`
	ContainerID  *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

func refFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func refToDomain(id *uuid.UUID) (*kernel.UUID, error) {
	if id == nil {
		return nil, nil
	}

	ref, err := kernel.UUIDFromBytes((*id)[:])
	if err != nil {
		return nil, err
	}
	return &ref, nil
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ClientID:     refFromDomain(aggregate.Client()),
		CompanyID:    refFromDomain(aggregate.Company()),
		Model:        aggregate.Spec().Model(),
		Color:        aggregate.Spec().Color(),
		Engine:       aggregate.Spec().Engine(),
		Transmission: aggregate.Spec().Transmission(),
		Doors:        aggregate.Spec().Doors(),
		DeliveryDate: aggregate.DeliveryDate(),
		Price:        aggregate.Price(),
		Status:       int(aggregate.Status()),
		Flag:         int(aggregate.Flag()),
		BatchID:      refFromDomain(aggregate.Batch()),
		ContainerID:  refFromDomain(aggregate.Container()),
	}
}

// toDomain converts a database DTO back to an order aggregate using
// RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	clientID, err := refToDomain(dto.ClientID)
	if err != nil {
		return nil, err
	}
	companyID, err := refToDomain(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	batchID, err := refToDomain(dto.BatchID)
	if err != nil {
		return nil, err
	}
	containerID, err := refToDomain(dto.ContainerID)
	if err != nil {
		return nil, err
	}

	spec, err := order.NewVehicleSpec(dto.Model, dto.Color, dto.Engine, dto.Transmission, dto.Doors)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		clientID,
		companyID,
		spec,
		dto.DeliveryDate,
		dto.Price,
		order.Status(dto.Status),
		order.Flag(dto.Flag),
		batchID,
		containerID,
	)
}
