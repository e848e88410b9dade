package order

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrWaypointIsNotConstructed is returned when using an improperly initialized Waypoint.
	ErrWaypointIsNotConstructed = errs.NewValueIsRequiredError(
		"waypoint must be created via NewWaypoint constructor")

	// ErrAddressIsRequired is returned when creating a waypoint without an address.
	ErrAddressIsRequired = errs.NewValueIsRequiredError("address")
)

// Waypoint pairs a human-readable address with validated coordinates.
// Orders carry one waypoint for pickup and, for delivery-type orders,
// a second one for drop-off.
type Waypoint struct {
	address string
	point   kernel.GeoPoint
	guard   guard.ConstructorGuard
}

// NewWaypoint creates a Waypoint from an address and coordinates.
// The address must be non-empty and the point must be a valid GeoPoint.
func NewWaypoint(address string, point kernel.GeoPoint) (Waypoint, error) {
	if address == "" {
		return Waypoint{}, ErrAddressIsRequired
	}
	if err := point.Validate(); err != nil {
		return Waypoint{}, err
	}

	return Waypoint{
		address: address,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks if the Waypoint was properly constructed via NewWaypoint.
func (w Waypoint) Validate() error {
	return w.guard.Validate(ErrWaypointIsNotConstructed)
}

// Address returns the human-readable address.
func (w Waypoint) Address() string {
	return w.address
}

// Point returns the validated coordinates.
func (w Waypoint) Point() kernel.GeoPoint {
	return w.point
}
