package commands_test

import (
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewSetRunnerAvailabilityCommand_Valid(t *testing.T) {
	id := kernel.NewUUID()

	cmd, err := commands.NewSetRunnerAvailabilityCommand(id, runner.Online)

	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	require.Equal(t, id, cmd.RunnerID())
	require.Equal(t, runner.Online, cmd.Availability())
}

func TestNewSetRunnerAvailabilityCommand_Invalid(t *testing.T) {
	t.Run("zero runner id", func(t *testing.T) {
		_, err := commands.NewSetRunnerAvailabilityCommand(kernel.UUID{}, runner.Online)
		require.Error(t, err)
	})

	t.Run("busy cannot be requested", func(t *testing.T) {
		_, err := commands.NewSetRunnerAvailabilityCommand(kernel.NewUUID(), runner.Busy)
		require.ErrorIs(t, err, commands.ErrAvailabilityNotSettable)
	})

	t.Run("unknown availability", func(t *testing.T) {
		_, err := commands.NewSetRunnerAvailabilityCommand(kernel.NewUUID(), runner.AvailabilityUnknown)
		require.ErrorIs(t, err, commands.ErrAvailabilityNotSettable)
	})
}

func TestSetRunnerAvailabilityCommand_Validate_NotConstructed(t *testing.T) {
	var cmd commands.SetRunnerAvailabilityCommand
	require.ErrorIs(t, cmd.Validate(), commands.ErrSetRunnerAvailabilityCommandIsNotConstructed)
}

func TestSetRunnerAvailabilityCommandHandler_Handle_GoesOnline(t *testing.T) {
	ctx := t.Context()

	target, err := runner.NewRunner(kernel.NewUUID(), "Sam")
	require.NoError(t, err)

	cmd, err := commands.NewSetRunnerAvailabilityCommand(target.ID(), runner.Online)
	require.NoError(t, err)

	runnerRepo := new(MockRunnerRepository)
	runnerRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()
	runnerRepo.On("Update", mock.Anything, target).Return(nil).Once()

	uow := new(MockRunnerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RunnerRepository").Return(runnerRepo).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRunnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	require.Equal(t, runner.Online, target.Availability())
	runnerRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestSetRunnerAvailabilityCommandHandler_Handle_BusyRunnerCannotGoOffline(t *testing.T) {
	ctx := t.Context()

	target := onlineRunner(t)
	require.NoError(t, target.MarkBusy())

	cmd, err := commands.NewSetRunnerAvailabilityCommand(target.ID(), runner.Offline)
	require.NoError(t, err)

	runnerRepo := new(MockRunnerRepository)
	runnerRepo.On("Get", mock.Anything, target.ID()).Return(target, nil).Once()

	uow := new(MockRunnerUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("RunnerRepository").Return(runnerRepo).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockRunnerUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewSetRunnerAvailabilityCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, runner.ErrRunnerIsBusy)
	require.Equal(t, runner.Busy, target.Availability())
	runnerRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestSetRunnerAvailabilityCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := new(MockRunnerUoWFactory)

	h := commands.NewSetRunnerAvailabilityCommandHandler(factory)
	err := h.Handle(t.Context(), commands.SetRunnerAvailabilityCommand{})

	require.ErrorIs(t, err, commands.ErrSetRunnerAvailabilityCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
