package order

import (
	"errors"
	"fmt"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrOrderNotClaimable is returned when a claim is attempted against an
	// order that is not a pending, unassigned, network-fulfilled order.
	ErrOrderNotClaimable = errors.New("order is not claimable")

	// ErrOrderNumberIsRequired is returned when creating an order without a number.
	ErrOrderNumberIsRequired = errs.NewValueIsRequiredError("order number")

	// ErrDropoffIsRequired is returned when a delivery-type order has no drop-off waypoint.
	ErrDropoffIsRequired = errs.NewValueIsRequiredError("drop-off waypoint")

	// ErrRunnerAssignmentCorrupted indicates the stored runner assignment
	// contradicts the order's status, e.g. a runner set while pending. This
	// is store corruption: processing of the order must halt rather than
	// patch the record.
	ErrRunnerAssignmentCorrupted = errors.New("runner assignment contradicts order status")
)

// Order is the aggregate root for a delivery order. It owns the order's
// identity, parties, monetary breakdown, and lifecycle status, and enforces
// the invariants that tie them together:
//
//   - Status transitions follow the mode-specific graph in Status.
//   - The runner assignment exists iff the order is a network-fulfilled order
//     that has left pending (and is always absent in merchant mode).
//   - Lifecycle timestamps are each set at most once and never move.
//   - The pricing breakdown is immutable after placement.
//
// Orders can only be created through NewOrder (fresh orders in pending
// status) or RestoreOrder (reconstruction from persistence).
type Order struct {
	id           kernel.UUID
	orderNumber  string
	buyerID      kernel.UUID
	sellerID     kernel.UUID
	runnerID     *kernel.UUID
	fulfillment  Fulfillment
	deliveryType DeliveryType
	status       Status
	pickup       Waypoint
	dropoff      *Waypoint
	pricing      Pricing

	estimatedMinutes *int
	createdAt        time.Time
	acceptedAt       *time.Time
	pickedUpAt       *time.Time
	deliveredAt      *time.Time

	isConstructed bool
}

// NewOrder creates a new Order in pending status.
//
// Parameters:
//   - id: unique identifier for the order
//   - orderNumber: human-readable order number, e.g. "CM-1A2B3C4D"
//   - buyerID, sellerID: the transacting parties
//   - fulfillment: merchant- or network-fulfilled
//   - deliveryType: pickup or delivery
//   - pickup: where the order is collected from
//   - dropoff: where the order is delivered to (required for delivery type, nil for pickup)
//   - pricing: immutable monetary breakdown
//   - createdAt: placement time
//
// Returns a validation error if any parameter is invalid. The order starts
// with no runner assigned; in network mode only a claim moves it past pending.
func NewOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	fulfillment Fulfillment,
	deliveryType DeliveryType,
	pickup Waypoint,
	dropoff *Waypoint,
	pricing Pricing,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setBuyerID(buyerID),
		order.setSellerID(sellerID),
		order.setFulfillment(fulfillment),
		order.setDeliveryType(deliveryType),
		order.setPickup(pickup),
		order.setDropoff(dropoff, deliveryType),
		order.setPricing(pricing),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order aggregate from persistent storage.
// Unlike NewOrder it accepts the full persisted state, including the current
// status, runner assignment, and lifecycle timestamps.
//
// The restored aggregate is checked against the runner-assignment invariant;
// a violation returns ErrRunnerAssignmentCorrupted, signalling that the
// stored record is corrupt and must not be processed further.
func RestoreOrder(
	id kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	runnerID *kernel.UUID,
	fulfillment Fulfillment,
	deliveryType DeliveryType,
	status Status,
	pickup Waypoint,
	dropoff *Waypoint,
	pricing Pricing,
	estimatedMinutes *int,
	createdAt time.Time,
	acceptedAt *time.Time,
	pickedUpAt *time.Time,
	deliveredAt *time.Time,
) (*Order, error) {
	order := &Order{
		status:           status,
		estimatedMinutes: estimatedMinutes,
		createdAt:        createdAt,
		acceptedAt:       acceptedAt,
		pickedUpAt:       pickedUpAt,
		deliveredAt:      deliveredAt,
		isConstructed:    true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setOrderNumber(orderNumber),
		order.setBuyerID(buyerID),
		order.setSellerID(sellerID),
		order.setFulfillment(fulfillment),
		order.setDeliveryType(deliveryType),
		order.setPickup(pickup),
		order.setDropoff(dropoff, deliveryType),
		order.setPricing(pricing),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	if runnerID != nil {
		if err := runnerID.Validate(); err != nil {
			return nil, err
		}
		order.runnerID = runnerID
	}

	if err := order.validateRunnerAssignment(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was properly constructed and its runner
// assignment is consistent with its status.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return o.validateRunnerAssignment()
}

// Claim atomically records a runner taking ownership of the order in memory:
// status moves pending -> accepted, the runner is assigned, and accepted_at
// is stamped. The caller persists the change with a conditional write so
// that exactly one of several racing claims commits.
//
// Returns an error wrapping ErrOrderNotClaimable if the order is not a
// pending, unassigned, network-fulfilled order.
func (o *Order) Claim(runnerID kernel.UUID, at time.Time) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	if o.fulfillment != NetworkFulfilled {
		return fmt.Errorf("%w: %s orders have no claim step", ErrOrderNotClaimable, o.fulfillment)
	}
	if o.status != Pending {
		return fmt.Errorf("%w: status is %s", ErrOrderNotClaimable, o.status)
	}
	if o.runnerID != nil {
		return fmt.Errorf("%w: already assigned to runner %s", ErrOrderNotClaimable, o.runnerID)
	}

	o.runnerID = &runnerID
	o.status = Accepted
	o.stampTimestamps(at)
	return nil
}

// TransitionTo moves the order to target if target is a direct successor of
// the current status in the mode-specific graph. The timestamp matching the
// new status is stamped the first time that status is reached only.
//
// Requesting the current status again is NOT handled here; idempotent no-op
// semantics belong to the caller, which must not invoke TransitionTo when
// target equals the current status.
func (o *Order) TransitionTo(target Status, at time.Time) error {
	if err := o.status.ValidateTransition(target, o.fulfillment, o.deliveryType); err != nil {
		return err
	}

	o.status = target
	o.stampTimestamps(at)
	return nil
}

// SetEstimatedMinutes records the delivery estimate. The estimate can only
// be set once, at acceptance; it is read-only afterward.
func (o *Order) SetEstimatedMinutes(minutes int) error {
	if minutes <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("estimated minutes",
			fmt.Errorf("%d is not greater than 0", minutes))
	}
	if o.status != Accepted {
		return errs.NewValueIsInvalidErrorWithCause("estimated minutes",
			fmt.Errorf("estimate can only be set at acceptance, status is %s", o.status))
	}
	if o.estimatedMinutes != nil {
		return errs.NewValueIsInvalidError("estimated minutes are already set")
	}

	o.estimatedMinutes = &minutes
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// OrderNumber returns the human-readable order number.
func (o *Order) OrderNumber() string {
	return o.orderNumber
}

// BuyerID returns the buyer's identifier.
func (o *Order) BuyerID() kernel.UUID {
	return o.buyerID
}

// SellerID returns the seller's identifier.
func (o *Order) SellerID() kernel.UUID {
	return o.sellerID
}

// RunnerID returns the assigned runner's identifier, or nil if unassigned.
func (o *Order) RunnerID() *kernel.UUID {
	return o.runnerID
}

// Fulfillment returns the order's fulfillment mode.
func (o *Order) Fulfillment() Fulfillment {
	return o.fulfillment
}

// DeliveryType returns the order's delivery type.
func (o *Order) DeliveryType() DeliveryType {
	return o.deliveryType
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Pickup returns the pickup waypoint.
func (o *Order) Pickup() Waypoint {
	return o.pickup
}

// Dropoff returns the drop-off waypoint, or nil for pickup-type orders.
func (o *Order) Dropoff() *Waypoint {
	return o.dropoff
}

// Pricing returns the immutable monetary breakdown.
func (o *Order) Pricing() Pricing {
	return o.pricing
}

// EstimatedMinutes returns the delivery estimate, or nil if not yet set.
func (o *Order) EstimatedMinutes() *int {
	return o.estimatedMinutes
}

// CreatedAt returns the placement time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// AcceptedAt returns when the order was accepted, or nil.
func (o *Order) AcceptedAt() *time.Time {
	return o.acceptedAt
}

// PickedUpAt returns when the order was picked up, or nil.
func (o *Order) PickedUpAt() *time.Time {
	return o.pickedUpAt
}

// DeliveredAt returns when the order was delivered, or nil.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// stampTimestamps records the lifecycle timestamp matching the current
// status, only if that timestamp has not been set before. Re-reaching a
// status never moves an existing stamp.
func (o *Order) stampTimestamps(at time.Time) {
	switch o.status { //nolint:exhaustive // only these statuses carry timestamps
	case Accepted:
		if o.acceptedAt == nil {
			o.acceptedAt = &at
		}
	case PickedUp:
		if o.pickedUpAt == nil {
			o.pickedUpAt = &at
		}
	case Delivered:
		if o.deliveredAt == nil {
			o.deliveredAt = &at
		}
	}
}

// validateRunnerAssignment enforces the invariant that a runner is assigned
// iff the order is a network-fulfilled order past pending. Cancelled orders
// are exempt: they may carry an assignment from before the cancellation or
// none at all.
func (o *Order) validateRunnerAssignment() error {
	if o.fulfillment == MerchantFulfilled {
		if o.runnerID != nil {
			return fmt.Errorf("%w: merchant-fulfilled order has runner %s",
				ErrRunnerAssignmentCorrupted, o.runnerID)
		}
		return nil
	}

	switch o.status {
	case Pending:
		if o.runnerID != nil {
			return fmt.Errorf("%w: pending order has runner %s",
				ErrRunnerAssignmentCorrupted, o.runnerID)
		}
	case Accepted, Ready, PickedUp, OnTheWay, Delivered:
		if o.runnerID == nil {
			return fmt.Errorf("%w: %s network order has no runner",
				ErrRunnerAssignmentCorrupted, o.status)
		}
	}

	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}
	o.orderNumber = orderNumber
	return nil
}

func (o *Order) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}
	o.buyerID = buyerID
	return nil
}

func (o *Order) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}
	o.sellerID = sellerID
	return nil
}

func (o *Order) setFulfillment(fulfillment Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}
	o.fulfillment = fulfillment
	return nil
}

func (o *Order) setDeliveryType(deliveryType DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}
	o.deliveryType = deliveryType
	return nil
}

func (o *Order) setPickup(pickup Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}
	o.pickup = pickup
	return nil
}

func (o *Order) setDropoff(dropoff *Waypoint, deliveryType DeliveryType) error {
	if deliveryType == Delivery && dropoff == nil {
		return ErrDropoffIsRequired
	}
	if dropoff != nil {
		if err := dropoff.Validate(); err != nil {
			return err
		}
		o.dropoff = dropoff
	}
	return nil
}

func (o *Order) setPricing(pricing Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}
	o.pricing = pricing
	return nil
}
