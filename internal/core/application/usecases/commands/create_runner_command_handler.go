package commands

import (
	"context"

	"dispatch/internal/core/domain/model/runner"
)

// CreateRunnerCommandHandler handles the business logic for runner registration.
type CreateRunnerCommandHandler struct {
	uowFactory RunnerUoWFactory
}

// NewCreateRunnerCommandHandler creates a handler for runner registration.
// Requires a RunnerUoWFactory for transactional persistence.
func NewCreateRunnerCommandHandler(uowFactory RunnerUoWFactory) CreateRunnerCommandHandler {
	return CreateRunnerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the runner registration command.
// New runners start offline.
func (h *CreateRunnerCommandHandler) Handle(ctx context.Context, cmd CreateRunnerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	newRunner, err := runner.NewRunner(cmd.RunnerID(), cmd.Name())
	if err != nil {
		return err
	}

	if err = uow.RunnerRepository().Add(ctx, newRunner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
