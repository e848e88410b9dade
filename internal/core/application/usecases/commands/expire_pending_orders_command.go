package commands

import (
	"errors"

	"dispatch/internal/pkg/guard"
)

var ErrExpirePendingOrdersCommandIsNotConstructed = errors.New(
	"ExpirePendingOrdersCommand must be created via NewExpirePendingOrdersCommand constructor",
)

// ExpirePendingOrdersCommand triggers cancellation of network orders nobody
// claimed within the configured time-to-live. This batch operation runs on a
// schedule.
//
// Example:
//
//	cmd := NewExpirePendingOrdersCommand()
//	handler := NewExpirePendingOrdersCommandHandler(uowFactory, 30*time.Minute)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("expiry sweep failed: %v", err)
//	}
type ExpirePendingOrdersCommand struct {
	guard guard.ConstructorGuard
}

// NewExpirePendingOrdersCommand creates a command to trigger the expiry sweep.
// This is a parameterless command that processes all overdue pending orders.
func NewExpirePendingOrdersCommand() ExpirePendingOrdersCommand {
	command := ExpirePendingOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}

	return command
}

// Validate ensures the command was created through the constructor.
// Returns ErrExpirePendingOrdersCommandIsNotConstructed if validation fails.
func (c *ExpirePendingOrdersCommand) Validate() error {
	return c.guard.Validate(ErrExpirePendingOrdersCommandIsNotConstructed)
}
