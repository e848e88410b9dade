package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/metrics"
)

// systemActorID attributes expiry cancellations on the order timeline.
// Expired orders are cancelled by the platform, not by a person.
var systemActorID, _ = kernel.UUIDFromString("00000000-0000-0000-0000-000000000001")

// ExpirePendingOrdersCommandHandler cancels network orders that sat pending
// past their time-to-live. Each order is cancelled through the same
// conditional write as any other transition, so a claim that lands mid-sweep
// wins and the sweep skips that order.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	ttl        time.Duration
}

// NewExpirePendingOrdersCommandHandler creates a handler for the expiry sweep.
// Orders pending longer than ttl are cancelled.
func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory, ttl time.Duration,
) ExpirePendingOrdersCommandHandler {
	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		ttl:        ttl,
	}
}

// Handle processes the expiry sweep command.
// Collects overdue pending orders and cancels each one conditionally.
// Orders claimed between the read and the write are skipped, as are orders
// whose stored state fails to restore; neither aborts the sweep.
func (h ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, command ExpirePendingOrdersCommand) error {
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
	cutoff := time.Now().UTC().Add(-h.ttl)

	overdue, err := orderRepo.GetAllPendingOlderThan(ctx, cutoff)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	for _, overdueOrder := range overdue {
		if err = h.cancel(ctx, orderRepo, overdueOrder, now); err != nil {
			if errors.Is(err, errs.ErrStaleState) {
				// Claimed between the read and the write; the claim wins
				slog.Info("expiry sweep: order claimed mid-sweep, skipping",
					"order_id", overdueOrder.ID().String())
				continue
			}
			return err
		}
		metrics.OrdersExpiredTotal.Inc()
	}

	return uow.Commit(ctx)
}

func (h ExpirePendingOrdersCommandHandler) cancel(
	ctx context.Context, orderRepo ports.OrderRepository, overdueOrder *order.Order, now time.Time,
) error {
	if err := overdueOrder.TransitionTo(order.Cancelled, now); err != nil {
		return err
	}

	if err := orderRepo.UpdateWhereStatus(ctx, overdueOrder, order.Pending); err != nil {
		return err
	}

	event, err := order.NewStatusEvent(
		kernel.NewUUID(), overdueOrder.ID(), order.Cancelled, "expired unclaimed",
		systemActorID, order.ActorSystem, now)
	if err != nil {
		return err
	}

	return orderRepo.AppendEvent(ctx, event)
}
