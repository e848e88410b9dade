package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrClaimOrderCommandIsNotConstructed = errors.New(
		"ClaimOrderCommand must be created via NewClaimOrderCommand constructor",
	)

	// ErrOrderUnavailable is returned when the order was already claimed,
	// cancelled or otherwise left the claimable state. This is the normal
	// outcome for every claimer but the winner of a race.
	ErrOrderUnavailable = errors.New("order is no longer available")
)

// ClaimOrderCommand represents a runner's attempt to take a pending network
// order. At most one of any number of concurrent claims for the same order
// succeeds.
//
// Example:
//
//	cmd, err := NewClaimOrderCommand(orderID, runnerID)
//	if err != nil {
//	    return err
//	}
//
//	err = handler.Handle(ctx, cmd)
//	if errors.Is(err, ErrOrderUnavailable) {
//	    // lost the race, pick another order from the feed
//	}
type ClaimOrderCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	runnerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewClaimOrderCommand creates a command for a runner to claim an order.
func NewClaimOrderCommand(orderID kernel.UUID, runnerID kernel.UUID) (ClaimOrderCommand, error) {
	command := ClaimOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRunnerID(runnerID),
	); err != nil {
		return ClaimOrderCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrClaimOrderCommandIsNotConstructed if validation fails.
func (c ClaimOrderCommand) Validate() error {
	return c.guard.Validate(ErrClaimOrderCommandIsNotConstructed)
}

// OrderID returns the order being claimed.
func (c ClaimOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RunnerID returns the claiming runner.
func (c ClaimOrderCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

func (c *ClaimOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *ClaimOrderCommand) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	c.runnerID = runnerID
	return nil
}
