package containerrepo

import (
	"context"
	"errors"

	"logistics/internal/core/domain/model/container"
	"logistics/internal/core/domain/model/kernel"
	"logistics/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// GormContainerRepository implements ContainerRepository using GORM.
type GormContainerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormContainerRepository creates a new GORM container repository.
func NewGormContainerRepository(db *gorm.DB, tracker aggregateTracker) *GormContainerRepository {
	return &GormContainerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new container to the database. The unique index on the
// container number surfaces duplicates as gorm.ErrDuplicatedKey.
func (r *GormContainerRepository) Add(ctx context.Context, aggregate *container.Container) error {
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

// Update saves an existing container to the database.
func (r *GormContainerRepository) Update(ctx context.Context, aggregate *container.Container) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
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

// Get retrieves a container by ID.
func (r *GormContainerRepository) Get(ctx context.Context, id kernel.UUID) (*container.Container, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContainerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("conteneur", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// ExistsByNumber reports whether a container with the given number exists.
func (r *GormContainerRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ContainerDTO{}).
		Where("number = ?", number).
		Count(&count).Error
	if err != nil {
		return false, err
	}

	return count > 0, nil
}

// GormSubcaseRepository implements SubcaseRepository using GORM.
type GormSubcaseRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSubcaseRepository creates a new GORM subcase repository.
func NewGormSubcaseRepository(db *gorm.DB, tracker aggregateTracker) *GormSubcaseRepository {
	return &GormSubcaseRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new subcase to the database.
func (r *GormSubcaseRepository) Add(ctx context.Context, aggregate *container.Subcase) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := subcaseFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a subcase by ID.
func (r *GormSubcaseRepository) Get(ctx context.Context, id kernel.UUID) (*container.Subcase, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto SubcaseDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("subcase", id.String())
		}
		return nil, err
	}

	return subcaseToDomain(dto)
}

// AddTool saves a new tool line to the database.
func (r *GormSubcaseRepository) AddTool(ctx context.Context, aggregate *container.Tool) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := toolFromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}
