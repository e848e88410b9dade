package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	ErrCreateRunnerCommandIsNotConstructed = errors.New(
		"CreateRunnerCommand must be created via NewCreateRunnerCommand constructor",
	)
	ErrRunnerNameIsRequired = errors.New("runner name is required")
)

// CreateRunnerCommand represents a request to register a new runner.
// Runners start offline and must go online before claiming orders.
type CreateRunnerCommand struct { //nolint:recvcheck //using for validation
	runnerID kernel.UUID
	name     string

	guard guard.ConstructorGuard
}

// NewCreateRunnerCommand creates a command to register a runner.
// Validates that the runner ID is valid and the name is not empty.
func NewCreateRunnerCommand(runnerID kernel.UUID, name string) (CreateRunnerCommand, error) {
	command := CreateRunnerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setRunnerID(runnerID),
		command.setName(name),
	); err != nil {
		return CreateRunnerCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateRunnerCommandIsNotConstructed if validation fails.
func (c CreateRunnerCommand) Validate() error {
	return c.guard.Validate(ErrCreateRunnerCommandIsNotConstructed)
}

// RunnerID returns the unique identifier for the runner.
func (c CreateRunnerCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

// Name returns the runner's display name.
func (c CreateRunnerCommand) Name() string {
	return c.name
}

func (c *CreateRunnerCommand) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	c.runnerID = runnerID
	return nil
}

func (c *CreateRunnerCommand) setName(name string) error {
	if name == "" {
		return ErrRunnerNameIsRequired
	}

	c.name = name
	return nil
}
