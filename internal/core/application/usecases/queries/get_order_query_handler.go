package queries

import (
	"context"
	"database/sql"
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single order retrieval.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve one order.
// Returns errs.ErrObjectNotFound if no order exists with the given ID.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_number,
			buyer_id,
			seller_id,
			runner_id,
			fulfillment,
			delivery_type,
			status,
			pickup_address,
			pickup_lat,
			pickup_lng,
			dropoff_address,
			dropoff_lat,
			dropoff_lng,
			subtotal_cents,
			tax_cents,
			delivery_fee_cents,
			total_cents,
			estimated_minutes,
			created_at,
			accepted_at,
			picked_up_at,
			delivered_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	resp, err := scanOrderRow(row)
	if errors.Is(err, sql.ErrNoRows) {
		return GetOrderQueryResponse{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return resp, nil
}

func scanOrderRow(row *sql.Row) (GetOrderQueryResponse, error) {
	var resp GetOrderQueryResponse
	var id, buyerID, sellerID uuid.UUID
	var runnerID *uuid.UUID
	var fulfillment, deliveryType, status int
	var dropoffAddress sql.NullString
	var dropoffLat, dropoffLng sql.NullFloat64

	err := row.Scan(
		&id,
		&resp.OrderNumber,
		&buyerID,
		&sellerID,
		&runnerID,
		&fulfillment,
		&deliveryType,
		&status,
		&resp.Pickup.Address,
		&resp.Pickup.Lat,
		&resp.Pickup.Lng,
		&dropoffAddress,
		&dropoffLat,
		&dropoffLng,
		&resp.Pricing.SubtotalCents,
		&resp.Pricing.TaxCents,
		&resp.Pricing.DeliveryFeeCents,
		&resp.Pricing.TotalCents,
		&resp.EstimatedMinutes,
		&resp.CreatedAt,
		&resp.AcceptedAt,
		&resp.PickedUpAt,
		&resp.DeliveredAt,
	)
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.BuyerID, err = kernel.UUIDFromBytes(buyerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if resp.SellerID, err = kernel.UUIDFromBytes(sellerID[:]); err != nil {
		return GetOrderQueryResponse{}, err
	}
	if runnerID != nil {
		rID, idErr := kernel.UUIDFromBytes((*runnerID)[:])
		if idErr != nil {
			return GetOrderQueryResponse{}, idErr
		}
		resp.RunnerID = &rID
	}

	resp.Fulfillment = order.Fulfillment(fulfillment).String()
	resp.DeliveryType = order.DeliveryType(deliveryType).String()
	resp.Status = order.Status(status).String()

	if dropoffAddress.Valid {
		resp.Dropoff = &WaypointResponse{
			Address: dropoffAddress.String,
			Lat:     dropoffLat.Float64,
			Lng:     dropoffLng.Float64,
		}
	}

	return resp, nil
}
