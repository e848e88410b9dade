package ports

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates and
// their append-only status events. Status is only ever written through the
// conditional-write methods: a write commits only if the stored status still
// matches what the caller read, which is what makes "read, decide, write"
// race-free without external locking.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// UpdateWhereStatus persists the aggregate's changes conditionally: the
	// write commits only if the stored status still equals expected at the
	// moment of the write. On a lost race it returns an error wrapping
	// errs.ErrStaleState and performs no mutation; the caller must refetch,
	// never blindly retry.
	UpdateWhereStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error

	// ClaimPending persists a claim conditionally: the write commits only if
	// the stored order is still pending AND unassigned. Exactly one of any
	// number of racing claims can commit; losers receive an error wrapping
	// errs.ErrStaleState.
	ClaimPending(ctx context.Context, aggregate *order.Order) error

	// GetAllClaimable retrieves pending, unassigned, network-fulfilled
	// orders: the feed a runner picks claims from.
	GetAllClaimable(ctx context.Context) ([]*order.Order, error)

	// GetAllPendingOlderThan retrieves network-fulfilled orders still
	// pending at the cutoff time. Used by the expiry sweep.
	GetAllPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error)

	// AppendEvent appends an immutable status event to the order's audit
	// trail. Events are written only for transitions that actually
	// committed.
	AppendEvent(ctx context.Context, event order.StatusEvent) error

	// GetEvents retrieves the order's status events ordered by append time.
	GetEvents(ctx context.Context, orderID kernel.UUID) ([]order.StatusEvent, error)
}
