package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// CreateOrderCommandHandler handles the business logic for order creation.
// New orders start in "pending" status; the first timeline event is written
// in the same transaction.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(...)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// Order is now pending and, for network orders, visible in the claim feed
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the order creation command.
// Creates the order in "pending" status and appends the opening timeline
// event attributed to the buyer. Uses a transaction so the order and its
// first event are persisted together or not at all.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
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

	now := time.Now().UTC()
	newOrder, err := order.NewOrder(
		cmd.OrderID(),
		cmd.OrderNumber(),
		cmd.BuyerID(),
		cmd.SellerID(),
		cmd.Fulfillment(),
		cmd.DeliveryType(),
		cmd.Pickup(),
		cmd.Dropoff(),
		cmd.Pricing(),
		now,
	)
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	if err = orderRepo.Add(ctx, newOrder); err != nil {
		return err
	}

	event, err := order.NewStatusEvent(
		kernel.NewUUID(), newOrder.ID(), order.Pending, "order placed", cmd.BuyerID(), order.ActorBuyer, now)
	if err != nil {
		return err
	}

	if err = orderRepo.AppendEvent(ctx, event); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
