package locationrepo

import (
	"context"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormLocationRepository implements LocationRepository using GORM.
type GormLocationRepository struct {
	db *gorm.DB
}

// NewGormLocationRepository creates a new GORM location repository.
func NewGormLocationRepository(db *gorm.DB) *GormLocationRepository {
	return &GormLocationRepository{db: db}
}

// Upsert writes the sample for its order, creating the row on first publish
// and overwriting it afterwards.
func (r *GormLocationRepository) Upsert(ctx context.Context, sample tracking.LocationSample) error {
	if err := sample.Validate(); err != nil {
		return err
	}

	dto := fromDomain(sample)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "order_id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}

// GetByOrder retrieves the current sample for the order.
func (r *GormLocationRepository) GetByOrder(
	ctx context.Context, orderID kernel.UUID,
) (tracking.LocationSample, error) {
	if err := orderID.Validate(); err != nil {
		return tracking.LocationSample{}, err
	}

	var dto LocationDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", orderID.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return tracking.LocationSample{}, errs.NewObjectNotFoundError("location", orderID.String())
		}
		return tracking.LocationSample{}, err
	}

	return toDomain(dto)
}
