// Package containerrepo provides the GORM repositories and data transfer
// objects for shipping container, subcase and tool persistence. The container
// number carries the unique constraint the conflict path relies on.
package containerrepo

import (
	"time"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ContainerDTO represents the database structure for persisting container
// aggregates.
type ContainerDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Number      string          `gorm:"uniqueIndex"`
	SealNumber  string
	Packages    int
	Weight      decimal.Decimal `gorm:"type:decimal(12,2)"`
	StuffingMap string
	Status      int `gorm:"index"`
	EmbarkedAt  *time.Time
	ArrivedAt   *time.Time
}

// TableName specifies the database table name for container entities.
func (ContainerDTO) TableName() string {
	return "containers"
}

// SubcaseDTO represents the database structure for persisting subcases.
type SubcaseDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Number      string
	ContainerID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for subcase entities.
func (SubcaseDTO) TableName() string {
	return "subcases"
}

// ToolDTO represents the database structure for persisting tool lines.
type ToolDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Code      string
	Name      string
	Quantity  int
	SubcaseID uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for tool entities.
func (ToolDTO) TableName() string {
	return "tools"
}

func fromDomain(aggregate *container.Container) ContainerDTO {
	return ContainerDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		SealNumber:  aggregate.SealNumber(),
		Packages:    aggregate.Packages(),
		Weight:      aggregate.Weight(),
		StuffingMap: aggregate.StuffingMap(),
		Status:      int(aggregate.Status()),
		EmbarkedAt:  aggregate.EmbarkedAt(),
		ArrivedAt:   aggregate.ArrivedAt(),
	}
}

func toDomain(dto ContainerDTO) (*container.Container, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreContainer(
		id,
		dto.Number,
		dto.SealNumber,
		dto.Packages,
		dto.Weight,
		dto.StuffingMap,
		container.Status(dto.Status),
		dto.EmbarkedAt,
		dto.ArrivedAt,
	)
}

func subcaseFromDomain(aggregate *container.Subcase) SubcaseDTO {
	return SubcaseDTO{
		ID:          aggregate.ID().Bytes(),
		Number:      aggregate.Number(),
		ContainerID: aggregate.Container().Bytes(),
	}
}

func subcaseToDomain(dto SubcaseDTO) (*container.Subcase, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	containerID, err := kernel.UUIDFromBytes(dto.ContainerID[:])
	if err != nil {
		return nil, err
	}

	return container.RestoreSubcase(id, dto.Number, containerID)
}

func toolFromDomain(aggregate *container.Tool) ToolDTO {
	return ToolDTO{
		ID:        aggregate.ID().Bytes(),
		Code:      aggregate.Code(),
		Name:      aggregate.Name(),
		Quantity:  aggregate.Quantity(),
		SubcaseID: aggregate.Subcase().Bytes(),
	}
}
