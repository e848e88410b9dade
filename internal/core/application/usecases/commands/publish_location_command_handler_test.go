package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLocationUoW struct{ mock.Mock }

func (m *MockLocationUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockLocationUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockLocationUoW) LocationRepository() ports.LocationRepository {
	args := m.Called()
	return args.Get(0).(ports.LocationRepository)
}

type MockLocationUoWFactory struct{ mock.Mock }

func (m *MockLocationUoWFactory) Create() commands.LocationUoW {
	args := m.Called()
	return args.Get(0).(commands.LocationUoW)
}

func TestPublishLocationCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()

	runnerID := kernel.NewUUID()
	trackedOrder := testPendingNetworkOrder(t)
	require.NoError(t, trackedOrder.Claim(runnerID, time.Now().UTC()))

	cmd, err := commands.NewPublishLocationCommand(
		trackedOrder.ID(), runnerID, 40.4433, -79.9436, 90, 2.5, 5, tracking.GPS)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	locationRepo := new(MockLocationRepository)
	uow := new(MockLocationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, trackedOrder.ID()).Return(trackedOrder, nil).Once()
	uow.On("LocationRepository").Return(locationRepo).Once()
	locationRepo.On("Upsert", mock.Anything, mock.AnythingOfType("tracking.LocationSample")).
		Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	orderRepo.AssertExpectations(t)
	locationRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestPublishLocationCommandHandler_Handle_OutsideWindow_Rejected(t *testing.T) {
	ctx := t.Context()

	runnerID := kernel.NewUUID()
	trackedOrder := testPendingNetworkOrder(t)
	require.NoError(t, trackedOrder.Claim(runnerID, time.Now().UTC()))
	require.NoError(t, trackedOrder.TransitionTo(order.PickedUp, time.Now().UTC()))
	require.NoError(t, trackedOrder.TransitionTo(order.OnTheWay, time.Now().UTC()))
	require.NoError(t, trackedOrder.TransitionTo(order.Delivered, time.Now().UTC()))

	cmd, err := commands.NewPublishLocationCommand(
		trackedOrder.ID(), runnerID, 40.4433, -79.9436, 90, 2.5, 5, tracking.GPS)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLocationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, trackedOrder.ID()).Return(trackedOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrLocationNotWritable)
	uow.AssertNotCalled(t, "LocationRepository")
}

func TestPublishLocationCommandHandler_Handle_NotAssignedRunner_Rejected(t *testing.T) {
	ctx := t.Context()

	trackedOrder := testPendingNetworkOrder(t)
	require.NoError(t, trackedOrder.Claim(kernel.NewUUID(), time.Now().UTC()))

	stranger := kernel.NewUUID()
	cmd, err := commands.NewPublishLocationCommand(
		trackedOrder.ID(), stranger, 40.4433, -79.9436, 90, 2.5, 5, tracking.GPS)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockLocationUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo).Once()
	orderRepo.On("Get", mock.Anything, trackedOrder.ID()).Return(trackedOrder, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockLocationUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPublishLocationCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, services.ErrLocationNotWritable)
}
