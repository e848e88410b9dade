package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrOrderNumberIsRequired = errors.New("order number is required")
)

// CreateOrderCommand represents a request to register a new delivery job.
// Encapsulates the parties, the fulfillment mode, the route endpoints and the
// price breakdown of the order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(
//	    kernel.NewUUID(), "ORD-1042", buyerID, sellerID,
//	    order.NetworkFulfilled, order.Delivery, pickup, &dropoff, pricing)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	orderNumber  string
	buyerID      kernel.UUID
	sellerID     kernel.UUID
	fulfillment  order.Fulfillment
	deliveryType order.DeliveryType
	pickup       order.Waypoint
	dropoff      *order.Waypoint
	pricing      order.Pricing

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates identifiers, the fulfillment mode and the waypoints. The dropoff
// is optional here; the aggregate enforces that delivery orders carry one.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	orderNumber string,
	buyerID kernel.UUID,
	sellerID kernel.UUID,
	fulfillment order.Fulfillment,
	deliveryType order.DeliveryType,
	pickup order.Waypoint,
	dropoff *order.Waypoint,
	pricing order.Pricing,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setOrderNumber(orderNumber),
		command.setBuyerID(buyerID),
		command.setSellerID(sellerID),
		command.setFulfillment(fulfillment),
		command.setDeliveryType(deliveryType),
		command.setPickup(pickup),
		command.setDropoff(dropoff),
		command.setPricing(pricing),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OrderNumber returns the human-facing order number.
func (c CreateOrderCommand) OrderNumber() string {
	return c.orderNumber
}

// BuyerID returns the buyer's identifier.
func (c CreateOrderCommand) BuyerID() kernel.UUID {
	return c.buyerID
}

// SellerID returns the seller's identifier.
func (c CreateOrderCommand) SellerID() kernel.UUID {
	return c.sellerID
}

// Fulfillment returns who carries the order out.
func (c CreateOrderCommand) Fulfillment() order.Fulfillment {
	return c.fulfillment
}

// DeliveryType returns how the order reaches the buyer.
func (c CreateOrderCommand) DeliveryType() order.DeliveryType {
	return c.deliveryType
}

// Pickup returns the pickup waypoint.
func (c CreateOrderCommand) Pickup() order.Waypoint {
	return c.pickup
}

// Dropoff returns the dropoff waypoint, nil for pickup orders.
func (c CreateOrderCommand) Dropoff() *order.Waypoint {
	return c.dropoff
}

// Pricing returns the price breakdown.
func (c CreateOrderCommand) Pricing() order.Pricing {
	return c.pricing
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setOrderNumber(orderNumber string) error {
	if orderNumber == "" {
		return ErrOrderNumberIsRequired
	}

	c.orderNumber = orderNumber
	return nil
}

func (c *CreateOrderCommand) setBuyerID(buyerID kernel.UUID) error {
	if err := buyerID.Validate(); err != nil {
		return err
	}

	c.buyerID = buyerID
	return nil
}

func (c *CreateOrderCommand) setSellerID(sellerID kernel.UUID) error {
	if err := sellerID.Validate(); err != nil {
		return err
	}

	c.sellerID = sellerID
	return nil
}

func (c *CreateOrderCommand) setFulfillment(fulfillment order.Fulfillment) error {
	if err := fulfillment.Validate(); err != nil {
		return err
	}

	c.fulfillment = fulfillment
	return nil
}

func (c *CreateOrderCommand) setDeliveryType(deliveryType order.DeliveryType) error {
	if err := deliveryType.Validate(); err != nil {
		return err
	}

	c.deliveryType = deliveryType
	return nil
}

func (c *CreateOrderCommand) setPickup(pickup order.Waypoint) error {
	if err := pickup.Validate(); err != nil {
		return err
	}

	c.pickup = pickup
	return nil
}

func (c *CreateOrderCommand) setDropoff(dropoff *order.Waypoint) error {
	if dropoff != nil {
		if err := dropoff.Validate(); err != nil {
			return err
		}
	}

	c.dropoff = dropoff
	return nil
}

func (c *CreateOrderCommand) setPricing(pricing order.Pricing) error {
	if err := pricing.Validate(); err != nil {
		return err
	}

	c.pricing = pricing
	return nil
}
