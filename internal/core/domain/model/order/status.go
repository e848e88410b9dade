package order

import (
	"errors"
	"fmt"

	"dispatch/internal/pkg/errs"
)

// ErrIllegalTransition is returned when a requested status change is not an
// edge of the order's mode-specific status graph. It indicates a client or
// programmer error and is surfaced verbatim, never retried.
var ErrIllegalTransition = errors.New("illegal status transition")

// Status represents the lifecycle state of a delivery order.
// It implements a state machine whose legal edges depend on the order's
// fulfillment mode and delivery type. Both fulfillment modes share this
// single vocabulary; they differ only in which edges exist and who may
// drive them.
//
// Network-fulfilled, delivery type (runner drives edges past accepted):
//
//	pending ──claim──> accepted ──> picked_up ──> on_the_way ──> delivered
//
// Network-fulfilled, pickup type:
//
//	pending ──claim──> accepted ──> ready ──> delivered
//
// Merchant-fulfilled, either type (seller drives every edge, no claim):
//
//	pending ──> accepted ──> ready ──> on_the_way ──> delivered
//
// Any non-terminal status may additionally transition to cancelled.
// Delivered and cancelled are terminal; no further transitions exist.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status when an order is placed.
	// Network-fulfilled orders wait here for a runner's claim.
	Pending

	// Accepted means the order has an owner: the claiming runner in network
	// mode, or the seller who acknowledged it in merchant mode.
	Accepted

	// Ready means the order is prepared and waiting to be collected.
	Ready

	// PickedUp means the runner has collected the order from the seller.
	PickedUp

	// OnTheWay means the order is in transit to the drop-off point.
	OnTheWay

	// Delivered means the order reached the buyer. Terminal.
	Delivered

	// Cancelled means the order was abandoned before delivery. Terminal.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Ready:     "ready",
		PickedUp:  "picked_up",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Ready:     "ready",
		PickedUp:  "picked_up",
		OnTheWay:  "on_the_way",
		Delivered: "delivered",
		Cancelled: "cancelled",
	}
}

// StatusFromString parses a status from its wire representation.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is valid.
// Unknown (0) and any out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// It implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Delivered || s == Cancelled
}

// successors returns the direct forward edges from this status in the graph
// for the given fulfillment mode and delivery type. Cancellation edges are
// handled separately in ValidateTransition. The claim edge (pending to
// accepted in network mode) is deliberately absent: it is driven by the
// claim operation, not by a status transition request.
func (s Status) successors(fulfillment Fulfillment, deliveryType DeliveryType) []Status {
	if fulfillment == MerchantFulfilled {
		switch s {
		case Pending:
			return []Status{Accepted}
		case Accepted:
			return []Status{Ready}
		case Ready:
			return []Status{OnTheWay}
		case OnTheWay:
			return []Status{Delivered}
		default:
			return nil
		}
	}

	if deliveryType == Pickup {
		switch s {
		case Accepted:
			return []Status{Ready}
		case Ready:
			return []Status{Delivered}
		default:
			return nil
		}
	}

	switch s {
	case Accepted:
		return []Status{PickedUp}
	case PickedUp:
		return []Status{OnTheWay}
	case OnTheWay:
		return []Status{Delivered}
	default:
		return nil
	}
}

// ValidateTransition checks whether target is a legal direct successor of
// this status in the mode-specific graph. Cancelled is reachable from any
// non-terminal status. Returns an error wrapping ErrIllegalTransition if the
// edge does not exist.
//
// Who is allowed to drive a legal edge is a separate concern enforced by the
// access guard; this method only answers whether the edge exists at all.
func (s Status) ValidateTransition(target Status, fulfillment Fulfillment, deliveryType DeliveryType) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if s.IsTerminal() {
		return fmt.Errorf("%w: %s is terminal", ErrIllegalTransition, s)
	}

	if target == Cancelled {
		return nil
	}

	for _, next := range s.successors(fulfillment, deliveryType) {
		if next == target {
			return nil
		}
	}

	return fmt.Errorf("%w: %s -> %s is not a legal edge for %s %s orders",
		ErrIllegalTransition, s, target, fulfillment, deliveryType)
}
