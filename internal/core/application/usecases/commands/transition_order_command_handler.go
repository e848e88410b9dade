package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// TransitionOrderCommandHandler drives an order through its status lifecycle.
// The write is conditional on the status the handler read, so two actors
// racing to move the same order resolve to one winner; the loser sees a
// stale state error and must refetch.
//
// Example:
//
//	handler := NewTransitionOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, errs.ErrStaleState):
//	    log.Println("order moved concurrently, refetch and retry")
//	case errors.Is(err, order.ErrIllegalTransition):
//	    log.Println("transition not allowed from current status")
//	case err != nil:
//	    log.Printf("transition failed: %v", err)
//	}
type TransitionOrderCommandHandler struct {
	uowFactory UoWFactory
	guard      services.AccessGuard
}

// NewTransitionOrderCommandHandler creates a handler for status transitions.
// Requires a UoWFactory for coordinating order and runner updates.
func NewTransitionOrderCommandHandler(uowFactory UoWFactory) TransitionOrderCommandHandler {
	return TransitionOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewAccessGuard(),
	}
}

// Handle processes the transition command.
// Requesting the status the order already has succeeds without writing
// anything. Otherwise the handler authorizes the actor, applies the
// transition and persists it conditionally on the status it read. When a
// network order reaches a terminal status its runner is released in the same
// transaction.
func (h TransitionOrderCommandHandler) Handle(ctx context.Context, command TransitionOrderCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	trackedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	// Retried deliveries of the same transition are absorbed here
	if trackedOrder.Status() == command.Target() {
		return nil
	}

	if err = h.guard.CanTransition(
		command.ActorID(), command.ActorRole(), trackedOrder, command.Target()); err != nil {
		return err
	}

	expected := trackedOrder.Status()
	now := time.Now().UTC()

	if err = trackedOrder.TransitionTo(command.Target(), now); err != nil {
		return err
	}

	if command.EstimatedMinutes() != nil && command.Target() == order.Accepted {
		if err = trackedOrder.SetEstimatedMinutes(*command.EstimatedMinutes()); err != nil {
			return err
		}
	}

	if err = orderRepo.UpdateWhereStatus(ctx, trackedOrder, expected); err != nil {
		return err
	}

	event, err := order.NewStatusEvent(
		kernel.NewUUID(), trackedOrder.ID(), command.Target(), command.Message(),
		command.ActorID(), command.ActorRole(), now)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendEvent(ctx, event); err != nil {
		return err
	}

	if err = h.releaseRunnerIfDone(ctx, uow, trackedOrder); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// releaseRunnerIfDone frees the assigned runner when a network order reaches
// a terminal status. Runs inside the transition's transaction so the order
// and its runner never commit out of step.
func (h TransitionOrderCommandHandler) releaseRunnerIfDone(
	ctx context.Context, uow UoW, trackedOrder *order.Order,
) error {
	if !trackedOrder.Status().IsTerminal() || trackedOrder.Fulfillment() != order.NetworkFulfilled {
		return nil
	}

	runnerID := trackedOrder.RunnerID()
	if runnerID == nil {
		return nil
	}

	runnerRepo := uow.RunnerRepository()
	assignedRunner, err := runnerRepo.Get(ctx, *runnerID)
	if err != nil {
		// A missing runner record must not block order completion
		if errors.Is(err, errs.ErrObjectNotFound) {
			slog.Warn("release runner: runner not found",
				"order_id", trackedOrder.ID().String(), "runner_id", runnerID.String())
			return nil
		}
		return err
	}

	assignedRunner.Release()
	return runnerRepo.Update(ctx, assignedRunner)
}
