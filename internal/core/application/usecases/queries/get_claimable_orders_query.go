package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetClaimableOrdersQueryIsNotConstructed = errors.New(
	"GetClaimableOrdersQuery must be created via NewGetClaimableOrdersQuery constructor",
)

// GetClaimableOrdersQuery retrieves the feed of orders runners can claim:
// pending, unassigned, network-fulfilled.
//
// Example:
//
//	query := NewGetClaimableOrdersQuery()
//	handler := NewGetClaimableOrdersQueryHandler(db)
//
//	feed, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve claim feed: %w", err)
//	}
type GetClaimableOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetClaimableOrdersQuery creates a query to retrieve the claim feed.
// This is a parameterless query that fetches all currently claimable orders.
func NewGetClaimableOrdersQuery() GetClaimableOrdersQuery {
	return GetClaimableOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetClaimableOrdersQueryIsNotConstructed if validation fails.
func (q GetClaimableOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetClaimableOrdersQueryIsNotConstructed)
}

// GetClaimableOrdersQueryResponse represents one claimable order in the feed.
// Carries just enough for a runner to decide whether to claim.
type GetClaimableOrdersQueryResponse struct {
	ID            kernel.UUID
	OrderNumber   string
	PickupAddress string
	PickupLat     float64
	PickupLng     float64
	TotalCents    int64
	CreatedAt     time.Time
}
