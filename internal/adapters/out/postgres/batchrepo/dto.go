// Package batchrepo provides the GORM repository and data transfer objects
// for grouped order batch persistence.
package batchrepo

import (
	"time"

	"logistics/internal/core/domain/model/batch"
	"logistics/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BatchDTO represents the database structure for persisting batch
// aggregates. Counts are integers in storage; they only become strings at
// the HTTP edge.
type BatchDTO struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	ValidationDate time.Time `gorm:"index"`
	TotalCount     int
	SoldCount      int
	AvailableCount int
	Details        string
	Status         int
}

// TableName specifies the database table name for batch entities.
func (BatchDTO) TableName() string {
	return "batches"
}

// fromDomain converts a batch aggregate to its database representation.
func fromDomain(aggregate *batch.Batch) BatchDTO {
	return BatchDTO{
		ID:             aggregate.ID().Bytes(),
		ValidationDate: aggregate.ValidationDate(),
		TotalCount:     aggregate.TotalCount(),
		SoldCount:      aggregate.SoldCount(),
		AvailableCount: aggregate.AvailableCount(),
		Details:        aggregate.Details(),
		Status:         int(aggregate.Status()),
	}
}

// toDomain converts a database DTO back to a batch aggregate using
// RestoreBatch.
func toDomain(dto BatchDTO) (*batch.Batch, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return batch.RestoreBatch(
		id,
		dto.ValidationDate,
		dto.TotalCount,
		dto.SoldCount,
		dto.AvailableCount,
		dto.Details,
		batch.Status(dto.Status),
	)
}
