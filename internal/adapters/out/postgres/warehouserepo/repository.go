package warehouserepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/core/domain/model/warehouse"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormSparePartRepository implements SparePartRepository using GORM.
type GormSparePartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSparePartRepository creates a new GORM spare part repository.
func NewGormSparePartRepository(db *gorm.DB, tracker aggregateTracker) *GormSparePartRepository {
	return &GormSparePartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new spare part to the database.
func (r *GormSparePartRepository) Add(ctx context.Context, aggregate *warehouse.SparePart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing spare part to the database.
func (r *GormSparePartRepository) Update(ctx context.Context, aggregate *warehouse.SparePart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := partFromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&SparePartDTO{}).
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

// Get retrieves a spare part by ID.
func (r *GormSparePartRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.SparePart, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SparePartDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("sparePart", id.String())
		}
		return nil, err
	}

	return partToDomain(dto)
}

// GormStorageRepository implements StorageRepository using GORM.
type GormStorageRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormStorageRepository creates a new GORM storage slot repository.
func NewGormStorageRepository(db *gorm.DB, tracker aggregateTracker) *GormStorageRepository {
	return &GormStorageRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new storage slot to the database.
func (r *GormStorageRepository) Add(ctx context.Context, aggregate *warehouse.Storage) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := storageFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a storage slot by ID.
func (r *GormStorageRepository) Get(ctx context.Context, id kernel.UUID) (*warehouse.Storage, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto StorageDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("storage", id.String())
		}
		return nil, err
	}

	return storageToDomain(dto)
}
