package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetClaimableOrdersQueryHandler retrieves the claim feed from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
// The feed is advisory: a claim may still lose to a concurrent claimer, the
// conditional write decides.
type GetClaimableOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetClaimableOrdersQueryHandler creates a handler for claim feed queries.
// Requires a GORM database connection for query execution.
func NewGetClaimableOrdersQueryHandler(db *gorm.DB) GetClaimableOrdersQueryHandler {
	return GetClaimableOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all claimable orders.
// Returns pending, unassigned, network-fulfilled orders, oldest first.
func (h GetClaimableOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetClaimableOrdersQuery,
) ([]GetClaimableOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetClaimableOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			pickup_address,
			pickup_lat,
			pickup_lng,
			total_cents,
			created_at
		FROM orders
		WHERE status = ? AND runner_id IS NULL AND fulfillment = ?
		ORDER BY created_at
	`, int(order.Pending), int(order.NetworkFulfilled)).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetClaimableOrdersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&resp.OrderNumber,
			&resp.PickupAddress,
			&resp.PickupLat,
			&resp.PickupLng,
			&resp.TotalCents,
			&resp.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID
		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
