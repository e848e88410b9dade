package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
)

// LocationRepository defines the persistence contract for live position
// samples. Exactly one row exists per order in flight; every publish
// overwrites it in place. No trajectory history is retained — callers who
// need a trail must add a separate append-only store deliberately.
type LocationRepository interface {
	// Upsert writes the sample for its order, creating the row on first
	// publish and overwriting it afterwards.
	Upsert(ctx context.Context, sample tracking.LocationSample) error

	// GetByOrder retrieves the current sample for the order.
	// Returns errs.ErrObjectNotFound if nothing was published yet.
	GetByOrder(ctx context.Context, orderID kernel.UUID) (tracking.LocationSample, error)
}
