package runnerrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormRunnerRepository implements RunnerRepository using GORM.
type GormRunnerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormRunnerRepository creates a new GORM runner repository.
func NewGormRunnerRepository(db *gorm.DB, tracker aggregateTracker) *GormRunnerRepository {
	return &GormRunnerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new runner to the database.
func (r *GormRunnerRepository) Add(ctx context.Context, aggregate *runner.Runner) error {
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

// Update saves an existing runner to the database.
func (r *GormRunnerRepository) Update(ctx context.Context, aggregate *runner.Runner) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&RunnerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "availability").
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

// Get retrieves a runner by ID.
func (r *GormRunnerRepository) Get(ctx context.Context, id kernel.UUID) (*runner.Runner, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RunnerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("runner", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}
