package tracking

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

// ErrSampleIsNotConstructed is returned when using an improperly initialized LocationSample.
var ErrSampleIsNotConstructed = errors.New(
	"LocationSample must be created via NewLocationSample or RestoreLocationSample constructor")

// LocationSample is the runner's last known position for one order in
// flight. There is exactly one sample per order, overwritten in place with
// every publish; no trajectory history is retained. Once the order leaves
// its active window the row becomes unwritable and should be considered
// stale for display purposes.
type LocationSample struct {
	orderID  kernel.UUID
	runnerID kernel.UUID
	point    kernel.GeoPoint
	heading  float64
	speed    float64
	accuracy float64
	source   Source

	updatedAt time.Time
	guard     guard.ConstructorGuard
}

// NewLocationSample creates a sample from a runner's position report.
//
// Validation rules:
//   - heading is in degrees, [0, 360)
//   - speed is in m/s, non-negative
//   - accuracy is in meters, non-negative
func NewLocationSample(
	orderID kernel.UUID,
	runnerID kernel.UUID,
	point kernel.GeoPoint,
	heading float64,
	speed float64,
	accuracy float64,
	source Source,
	updatedAt time.Time,
) (LocationSample, error) {
	sample := LocationSample{
		updatedAt: updatedAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		sample.setOrderID(orderID),
		sample.setRunnerID(runnerID),
		sample.setPoint(point),
		sample.setHeading(heading),
		sample.setSpeed(speed),
		sample.setAccuracy(accuracy),
		sample.setSource(source),
	); err != nil {
		return LocationSample{}, err
	}

	return sample, nil
}

// RestoreLocationSample reconstructs a sample from persistent storage.
// It applies the same validation as NewLocationSample.
func RestoreLocationSample(
	orderID kernel.UUID,
	runnerID kernel.UUID,
	point kernel.GeoPoint,
	heading float64,
	speed float64,
	accuracy float64,
	source Source,
	updatedAt time.Time,
) (LocationSample, error) {
	return NewLocationSample(orderID, runnerID, point, heading, speed, accuracy, source, updatedAt)
}

// Validate checks if the sample was properly constructed.
func (s LocationSample) Validate() error {
	return s.guard.Validate(ErrSampleIsNotConstructed)
}

// OrderID returns the order the sample belongs to.
func (s LocationSample) OrderID() kernel.UUID {
	return s.orderID
}

// RunnerID returns the runner who published the sample.
func (s LocationSample) RunnerID() kernel.UUID {
	return s.runnerID
}

// Point returns the reported coordinates.
func (s LocationSample) Point() kernel.GeoPoint {
	return s.point
}

// Heading returns the direction of travel in degrees, [0, 360).
func (s LocationSample) Heading() float64 {
	return s.heading
}

// Speed returns the reported speed in m/s.
func (s LocationSample) Speed() float64 {
	return s.speed
}

// Accuracy returns the GPS accuracy in meters.
func (s LocationSample) Accuracy() float64 {
	return s.accuracy
}

// Source returns how the position was obtained.
func (s LocationSample) Source() Source {
	return s.source
}

// UpdatedAt returns when the sample was published.
func (s LocationSample) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *LocationSample) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	s.orderID = orderID
	return nil
}

func (s *LocationSample) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}
	s.runnerID = runnerID
	return nil
}

func (s *LocationSample) setPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	s.point = point
	return nil
}

func (s *LocationSample) setHeading(heading float64) error {
	if heading < 0 || heading >= 360 {
		return errs.NewValueIsOutOfRangeError("heading", heading, 0, 360)
	}
	s.heading = heading
	return nil
}

func (s *LocationSample) setSpeed(speed float64) error {
	if speed < 0 {
		return errs.NewValueIsInvalidErrorWithCause("speed",
			fmt.Errorf("%f is negative", speed))
	}
	s.speed = speed
	return nil
}

func (s *LocationSample) setAccuracy(accuracy float64) error {
	if accuracy < 0 {
		return errs.NewValueIsInvalidErrorWithCause("accuracy",
			fmt.Errorf("%f is negative", accuracy))
	}
	s.accuracy = accuracy
	return nil
}

func (s *LocationSample) setSource(source Source) error {
	if err := source.Validate(); err != nil {
		return err
	}
	s.source = source
	return nil
}
