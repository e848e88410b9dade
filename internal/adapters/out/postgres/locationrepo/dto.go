// Package locationrepo provides data transfer objects and mapping functions for
// live position persistence. Exactly one row exists per order in flight; every
// publish overwrites it in place.
package locationrepo

import (
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"

	"github.com/google/uuid"
)

// LocationDTO represents the database structure for the current position of an
// order in flight. The order ID is the primary key, which is what makes the
// store last-write-wins.
type LocationDTO struct {
	OrderID   uuid.UUID `gorm:"type:uuid;primaryKey"`
	RunnerID  uuid.UUID `gorm:"type:uuid"`
	Lat       float64
	Lng       float64
	Heading   float64
	Speed     float64
	Accuracy  float64
	Source    int `gorm:"type:smallint"`
	UpdatedAt time.Time
}

// TableName specifies the database table name for location entities.
func (LocationDTO) TableName() string {
	return "order_locations"
}

// fromDomain converts a location sample to its database representation.
func fromDomain(sample tracking.LocationSample) LocationDTO {
	return LocationDTO{
		OrderID:   sample.OrderID().Bytes(),
		RunnerID:  sample.RunnerID().Bytes(),
		Lat:       sample.Point().Lat(),
		Lng:       sample.Point().Lng(),
		Heading:   sample.Heading(),
		Speed:     sample.Speed(),
		Accuracy:  sample.Accuracy(),
		Source:    int(sample.Source()),
		UpdatedAt: sample.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a location sample value object.
func toDomain(dto LocationDTO) (tracking.LocationSample, error) {
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return tracking.LocationSample{}, err
	}

	runnerID, err := kernel.UUIDFromBytes(dto.RunnerID[:])
	if err != nil {
		return tracking.LocationSample{}, err
	}

	point, err := kernel.NewGeoPoint(dto.Lat, dto.Lng)
	if err != nil {
		return tracking.LocationSample{}, err
	}

	return tracking.RestoreLocationSample(
		orderID,
		runnerID,
		point,
		dto.Heading,
		dto.Speed,
		dto.Accuracy,
		tracking.Source(dto.Source),
		dto.UpdatedAt,
	)
}
