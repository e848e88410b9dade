package order

import (
	"fmt"

	"dispatch/internal/pkg/errs"
)

// Fulfillment identifies who carries an order to the buyer.
// Merchant-fulfilled orders are delivered (or held for pickup) by the seller
// personally; network-fulfilled orders are claimed and carried by an
// independent runner.
type Fulfillment int

const (
	// FulfillmentUnknown represents an invalid or undefined fulfillment mode.
	FulfillmentUnknown Fulfillment = iota

	// MerchantFulfilled means the seller drives the order lifecycle themselves.
	// No runner is ever assigned in this mode.
	MerchantFulfilled

	// NetworkFulfilled means an independent runner claims the order and
	// carries it. The claim is the only way the order leaves pending.
	NetworkFulfilled
)

func getFulfillmentStrings() map[Fulfillment]string {
	return map[Fulfillment]string{
		MerchantFulfilled: "merchant",
		NetworkFulfilled:  "network",
	}
}

// FulfillmentFromString parses a fulfillment mode from its wire representation.
func FulfillmentFromString(s string) (Fulfillment, error) {
	for f, str := range getFulfillmentStrings() {
		if str == s {
			return f, nil
		}
	}
	return FulfillmentUnknown, errs.NewValueIsInvalidErrorWithCause("fulfillment",
		fmt.Errorf("%q is not a valid fulfillment mode", s))
}

// Validate checks if the Fulfillment value is valid.
func (f Fulfillment) Validate() error {
	if _, ok := getFulfillmentStrings()[f]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("fulfillment",
			fmt.Errorf("%d is not a valid fulfillment mode", f))
	}
	return nil
}

// String returns the wire representation of the fulfillment mode.
func (f Fulfillment) String() string {
	if str, ok := getFulfillmentStrings()[f]; ok {
		return str
	}
	return "unknown"
}

// DeliveryType identifies how the buyer receives the order:
// picked up at the seller's location or delivered to a drop-off point.
type DeliveryType int

const (
	// DeliveryTypeUnknown represents an invalid or undefined delivery type.
	DeliveryTypeUnknown DeliveryType = iota

	// Pickup means the buyer collects the order; no drop-off point exists.
	Pickup

	// Delivery means the order is carried to the buyer's drop-off point.
	Delivery
)

func getDeliveryTypeStrings() map[DeliveryType]string {
	return map[DeliveryType]string{
		Pickup:   "pickup",
		Delivery: "delivery",
	}
}

// DeliveryTypeFromString parses a delivery type from its wire representation.
func DeliveryTypeFromString(s string) (DeliveryType, error) {
	for dt, str := range getDeliveryTypeStrings() {
		if str == s {
			return dt, nil
		}
	}
	return DeliveryTypeUnknown, errs.NewValueIsInvalidErrorWithCause("delivery type",
		fmt.Errorf("%q is not a valid delivery type", s))
}

// Validate checks if the DeliveryType value is valid.
func (dt DeliveryType) Validate() error {
	if _, ok := getDeliveryTypeStrings()[dt]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("delivery type",
			fmt.Errorf("%d is not a valid delivery type", dt))
	}
	return nil
}

// String returns the wire representation of the delivery type.
func (dt DeliveryType) String() string {
	if str, ok := getDeliveryTypeStrings()[dt]; ok {
		return str
	}
	return "unknown"
}

// ActorRole identifies who requested a status transition.
// The role determines which edges of the status graph the actor may drive.
type ActorRole int

const (
	// ActorUnknown represents an invalid or undefined actor role.
	ActorUnknown ActorRole = iota

	// ActorBuyer placed the order. Buyers may only request cancellation.
	ActorBuyer

	// ActorSeller owns the listing. Sellers drive merchant-fulfilled edges.
	ActorSeller

	// ActorRunner is the assigned delivery runner. Runners drive
	// network-fulfilled edges past accepted.
	ActorRunner

	// ActorSystem is an internal automated actor, e.g. the pending-order
	// expiry sweep. Like buyers, it may only request cancellation.
	ActorSystem
)

func getActorRoleStrings() map[ActorRole]string {
	return map[ActorRole]string{
		ActorBuyer:  "buyer",
		ActorSeller: "seller",
		ActorRunner: "runner",
		ActorSystem: "system",
	}
}

// ActorRoleFromString parses an actor role from its wire representation.
func ActorRoleFromString(s string) (ActorRole, error) {
	for r, str := range getActorRoleStrings() {
		if str == s {
			return r, nil
		}
	}
	return ActorUnknown, errs.NewValueIsInvalidErrorWithCause("actor role",
		fmt.Errorf("%q is not a valid actor role", s))
}

// Validate checks if the ActorRole value is valid.
func (r ActorRole) Validate() error {
	if _, ok := getActorRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("actor role",
			fmt.Errorf("%d is not a valid actor role", r))
	}
	return nil
}

// String returns the wire representation of the actor role.
func (r ActorRole) String() string {
	if str, ok := getActorRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}
