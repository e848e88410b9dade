package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"
	"dispatch/internal/pkg/guard"
)

var (
	ErrSetRunnerAvailabilityCommandIsNotConstructed = errors.New(
		"SetRunnerAvailabilityCommand must be created via NewSetRunnerAvailabilityCommand constructor",
	)

	// ErrAvailabilityNotSettable is returned for availability values runners
	// may not request directly. Busy is managed by the claim and completion
	// flows, never set by hand.
	ErrAvailabilityNotSettable = errors.New("availability cannot be set directly")
)

// SetRunnerAvailabilityCommand represents a runner going online or offline.
type SetRunnerAvailabilityCommand struct { //nolint:recvcheck //using for validation
	runnerID     kernel.UUID
	availability runner.Availability

	guard guard.ConstructorGuard
}

// NewSetRunnerAvailabilityCommand creates a command to change a runner's
// availability. Only Online and Offline are accepted.
func NewSetRunnerAvailabilityCommand(
	runnerID kernel.UUID, availability runner.Availability,
) (SetRunnerAvailabilityCommand, error) {
	command := SetRunnerAvailabilityCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRunnerID(runnerID),
		command.setAvailability(availability),
	); err != nil {
		return SetRunnerAvailabilityCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetRunnerAvailabilityCommandIsNotConstructed if validation fails.
func (c SetRunnerAvailabilityCommand) Validate() error {
	return c.guard.Validate(ErrSetRunnerAvailabilityCommandIsNotConstructed)
}

// RunnerID returns the runner changing availability.
func (c SetRunnerAvailabilityCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

// Availability returns the requested availability.
func (c SetRunnerAvailabilityCommand) Availability() runner.Availability {
	return c.availability
}

func (c *SetRunnerAvailabilityCommand) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	c.runnerID = runnerID
	return nil
}

func (c *SetRunnerAvailabilityCommand) setAvailability(availability runner.Availability) error {
	if availability != runner.Online && availability != runner.Offline {
		return ErrAvailabilityNotSettable
	}

	c.availability = availability
	return nil
}
