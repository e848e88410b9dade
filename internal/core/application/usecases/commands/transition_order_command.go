package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/guard"
)

var (
	ErrTransitionOrderCommandIsNotConstructed = errors.New(
		"TransitionOrderCommand must be created via NewTransitionOrderCommand constructor",
	)
	ErrEstimatedMinutesIsInvalid = errors.New("estimated minutes must be greater than 0")
)

// TransitionOrderCommand represents a request to move an order to a new
// lifecycle status on behalf of an actor. Repeating a transition the order
// already completed is a no-op, which makes retries safe.
//
// Example:
//
//	cmd, err := NewTransitionOrderCommand(
//	    orderID, order.PickedUp, runnerID, order.ActorRunner, "", nil)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type TransitionOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	target           order.Status
	actorID          kernel.UUID
	actorRole        order.ActorRole
	message          string
	estimatedMinutes *int

	guard guard.ConstructorGuard
}

// NewTransitionOrderCommand creates a command to drive an order through its
// lifecycle. The message is optional free text for the order timeline; the
// estimated minutes are optional and only meaningful when accepting.
func NewTransitionOrderCommand(
	orderID kernel.UUID,
	target order.Status,
	actorID kernel.UUID,
	actorRole order.ActorRole,
	message string,
	estimatedMinutes *int,
) (TransitionOrderCommand, error) {
	command := TransitionOrderCommand{
		message: message,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setTarget(target),
		command.setActorID(actorID),
		command.setActorRole(actorRole),
		command.setEstimatedMinutes(estimatedMinutes),
	); err != nil {
		return TransitionOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrTransitionOrderCommandIsNotConstructed if validation fails.
func (c TransitionOrderCommand) Validate() error {
	return c.guard.Validate(ErrTransitionOrderCommandIsNotConstructed)
}

// OrderID returns the order being transitioned.
func (c TransitionOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Target returns the requested status.
func (c TransitionOrderCommand) Target() order.Status {
	return c.target
}

// ActorID returns the actor requesting the transition.
func (c TransitionOrderCommand) ActorID() kernel.UUID {
	return c.actorID
}

// ActorRole returns the role the actor acts in.
func (c TransitionOrderCommand) ActorRole() order.ActorRole {
	return c.actorRole
}

// Message returns the optional timeline message.
func (c TransitionOrderCommand) Message() string {
	return c.message
}

// EstimatedMinutes returns the optional delivery estimate, nil when absent.
func (c TransitionOrderCommand) EstimatedMinutes() *int {
	return c.estimatedMinutes
}

func (c *TransitionOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *TransitionOrderCommand) setTarget(target order.Status) error {
	if err := target.Validate(); err != nil {
		return err
	}

	c.target = target
	return nil
}

func (c *TransitionOrderCommand) setActorID(actorID kernel.UUID) error {
	if err := actorID.Validate(); err != nil {
		return err
	}

	c.actorID = actorID
	return nil
}

func (c *TransitionOrderCommand) setActorRole(actorRole order.ActorRole) error {
	if err := actorRole.Validate(); err != nil {
		return err
	}

	c.actorRole = actorRole
	return nil
}

func (c *TransitionOrderCommand) setEstimatedMinutes(estimatedMinutes *int) error {
	if estimatedMinutes != nil && *estimatedMinutes <= 0 {
		return ErrEstimatedMinutesIsInvalid
	}

	c.estimatedMinutes = estimatedMinutes
	return nil
}
