package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"
)

// ClaimOrderCommandHandler orchestrates the claim of a pending network order.
// The decisive step is the conditional write: the claim commits only if the
// stored order is still pending and unassigned at the moment of the write, so
// concurrent claims resolve to exactly one winner without locks.
//
// Example:
//
//	handler := NewClaimOrderCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrOrderUnavailable):
//	    log.Println("order already taken")
//	case err != nil:
//	    log.Printf("claim failed: %v", err)
//	default:
//	    log.Println("order claimed")
//	}
type ClaimOrderCommandHandler struct {
	uowFactory UoWFactory
	guard      services.AccessGuard
}

// NewClaimOrderCommandHandler creates a handler for claim operations.
// Requires a UoWFactory for coordinating order and runner updates.
func NewClaimOrderCommandHandler(uowFactory UoWFactory) ClaimOrderCommandHandler {
	return ClaimOrderCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewAccessGuard(),
	}
}

// Handle processes the claim command.
// Checks that the runner is online and the order claimable, then persists the
// claim through the conditional write. A lost race surfaces as
// ErrOrderUnavailable. After the claim commits the runner is marked busy in a
// separate transaction; failure there never unwinds the claim.
func (h ClaimOrderCommandHandler) Handle(ctx context.Context, command ClaimOrderCommand) error {
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

	claimingRunner, err := uow.RunnerRepository().Get(ctx, command.RunnerID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	claimedOrder, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.guard.CanClaim(claimingRunner, claimedOrder); err != nil {
		if errors.Is(err, order.ErrOrderNotClaimable) {
			return fmt.Errorf("%w: %w", ErrOrderUnavailable, err)
		}
		return err
	}

	now := time.Now().UTC()
	if err = claimedOrder.Claim(command.RunnerID(), now); err != nil {
		return err
	}

	if err = orderRepo.ClaimPending(ctx, claimedOrder); err != nil {
		if errors.Is(err, errs.ErrStaleState) {
			return fmt.Errorf("%w: %w", ErrOrderUnavailable, err)
		}
		return err
	}

	event, err := order.NewStatusEvent(
		kernel.NewUUID(), claimedOrder.ID(), order.Accepted, "claimed by runner",
		command.RunnerID(), order.ActorRunner, now)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendEvent(ctx, event); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	h.markRunnerBusy(ctx, command.RunnerID())
	return nil
}

// markRunnerBusy flips the winning runner to busy after the claim committed.
// Availability is advisory, so a failure here is logged and swallowed rather
// than undoing a claim the runner already won.
func (h ClaimOrderCommandHandler) markRunnerBusy(ctx context.Context, runnerID kernel.UUID) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		slog.Warn("mark runner busy: begin failed", "runner_id", runnerID.String(), "error", err)
		return
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	runnerRepo := uow.RunnerRepository()
	claimingRunner, err := runnerRepo.Get(ctx, runnerID)
	if err != nil {
		slog.Warn("mark runner busy: get failed", "runner_id", runnerID.String(), "error", err)
		return
	}

	if err = claimingRunner.MarkBusy(); err != nil {
		slog.Warn("mark runner busy: rejected", "runner_id", runnerID.String(), "error", err)
		return
	}

	if err = runnerRepo.Update(ctx, claimingRunner); err != nil {
		slog.Warn("mark runner busy: update failed", "runner_id", runnerID.String(), "error", err)
		return
	}

	if err = uow.Commit(ctx); err != nil {
		slog.Warn("mark runner busy: commit failed", "runner_id", runnerID.String(), "error", err)
	}
}
