// Package assemblyrepo provides the GORM repository and data transfer
// objects for vehicle assembly order persistence.
package assemblyrepo

import (
	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// MontageDTO represents the database structure for persisting assembly
// order aggregates.
type MontageDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ChassisNo string
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Status    int
}

// TableName specifies the database table name for assembly order entities.
func (MontageDTO) TableName() string {
	return "montages"
}

func fromDomain(aggregate *assembly.Montage) MontageDTO {
	return MontageDTO{
		ID:        aggregate.ID().Bytes(),
		ChassisNo: aggregate.ChassisNo(),
		OrderID:   aggregate.Order().Bytes(),
		Status:    int(aggregate.Status()),
	}
}

func toDomain(dto MontageDTO) (*assembly.Montage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	return assembly.RestoreMontage(id, dto.ChassisNo, orderID, assembly.Status(dto.Status))
}
