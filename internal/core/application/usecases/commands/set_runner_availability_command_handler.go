package commands

import (
	"context"

	"dispatch/internal/core/domain/model/runner"
)

// SetRunnerAvailabilityCommandHandler handles runners going online or offline.
// A busy runner may do neither; the carried order has to finish first.
type SetRunnerAvailabilityCommandHandler struct {
	uowFactory RunnerUoWFactory
}

// NewSetRunnerAvailabilityCommandHandler creates a handler for availability changes.
// Requires a RunnerUoWFactory for transactional persistence.
func NewSetRunnerAvailabilityCommandHandler(uowFactory RunnerUoWFactory) SetRunnerAvailabilityCommandHandler {
	return SetRunnerAvailabilityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the availability change command.
func (h *SetRunnerAvailabilityCommandHandler) Handle(
	ctx context.Context, cmd SetRunnerAvailabilityCommand,
) error {
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

	runnerRepo := uow.RunnerRepository()
	targetRunner, err := runnerRepo.Get(ctx, cmd.RunnerID())
	if err != nil {
		return err
	}

	if cmd.Availability() == runner.Online {
		err = targetRunner.SetOnline()
	} else {
		err = targetRunner.SetOffline()
	}
	if err != nil {
		return err
	}

	if err = runnerRepo.Update(ctx, targetRunner); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
