// Package warehouserepo provides the GORM repositories and data transfer
// objects for spare part and storage slot persistence.
package warehouserepo

import (
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
)

// SparePartDTO represents the database structure for persisting spare part
// aggregates.
type SparePartDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string
	Name      string
	NameFr    string
	Quantity  int
	Status    int        `gorm:"index"`
	SubcaseID *uuid.UUID `gorm:"type:uuid;index"`
	StorageID *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for spare part entities.
func (SparePartDTO) TableName() string {
	return "spare_parts"
}

// StorageDTO represents the database structure for persisting storage slots.
type StorageDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number  string
	Door    string
	Rack    string
	Level   string
	CaseNum string
}

// TableName specifies the database table name for storage slot entities.
func (StorageDTO) TableName() string {
	return "storages"
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

func partFromDomain(aggregate *warehouse.SparePart) SparePartDTO {
	return SparePartDTO{
		ID:        aggregate.ID().Bytes(),
		Code:      aggregate.Code(),
		Name:      aggregate.Name(),
		NameFr:    aggregate.NameFr(),
		Quantity:  aggregate.Quantity(),
		Status:    int(aggregate.Status()),
		SubcaseID: refFromDomain(aggregate.SubcaseRef()),
		StorageID: refFromDomain(aggregate.Storage()),
	}
}

func partToDomain(dto SparePartDTO) (*warehouse.SparePart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	subcaseID, err := refToDomain(dto.SubcaseID)
	if err != nil {
		return nil, err
	}
	storageID, err := refToDomain(dto.StorageID)
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreSparePart(
		id,
		dto.Code,
		dto.Name,
		dto.NameFr,
		dto.Quantity,
		warehouse.Status(dto.Status),
		subcaseID,
		storageID,
	)
}

func storageFromDomain(aggregate *warehouse.Storage) StorageDTO {
	return StorageDTO{
		ID:      aggregate.ID().Bytes(),
		Number:  aggregate.Number(),
		Door:    aggregate.Door(),
		Rack:    aggregate.Rack(),
		Level:   aggregate.Level(),
		CaseNum: aggregate.Case(),
	}
}

func storageToDomain(dto StorageDTO) (*warehouse.Storage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return warehouse.RestoreStorage(id, dto.Number, dto.Door, dto.Rack, dto.Level, dto.CaseNum)
}
