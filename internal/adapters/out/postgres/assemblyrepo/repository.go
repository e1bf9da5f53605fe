package assemblyrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/assembly"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormMontageRepository implements MontageRepository using GORM.
type GormMontageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormMontageRepository creates a new GORM assembly order repository.
func NewGormMontageRepository(db *gorm.DB, tracker aggregateTracker) *GormMontageRepository {
	return &GormMontageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new assembly order to the database.
func (r *GormMontageRepository) Add(ctx context.Context, aggregate *assembly.Montage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing assembly order to the database.
func (r *GormMontageRepository) Update(ctx context.Context, aggregate *assembly.Montage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&MontageDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an assembly order by ID.
func (r *GormMontageRepository) Get(ctx context.Context, id kernel.UUID) (*assembly.Montage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto MontageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("montage", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
