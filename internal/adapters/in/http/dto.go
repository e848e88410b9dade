package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// WaypointBody carries a route endpoint on the wire.
type WaypointBody struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// PricingBody carries the immutable price breakdown in integer cents.
type PricingBody struct {
	SubtotalCents    int64 `json:"subtotal_cents"`
	TaxCents         int64 `json:"tax_cents"`
	DeliveryFeeCents int64 `json:"delivery_fee_cents"`
	TotalCents       int64 `json:"total_cents"`
}

// CreateOrderRequest is the checkout collaborator's contract for registering
// a delivery job. The order number is optional; one is generated when absent.
type CreateOrderRequest struct {
	OrderNumber  string        `json:"order_number,omitempty"`
	BuyerID      string        `json:"buyer_id"`
	SellerID     string        `json:"seller_id"`
	Fulfillment  string        `json:"fulfillment"`
	DeliveryType string        `json:"delivery_type"`
	Pickup       WaypointBody  `json:"pickup"`
	Dropoff      *WaypointBody `json:"dropoff,omitempty"`
	Pricing      PricingBody   `json:"pricing"`
}

// CreateOrderResponse identifies the order that was just placed.
type CreateOrderResponse struct {
	ID          string `json:"id"`
	OrderNumber string `json:"order_number"`
	Status      string `json:"status"`
}

// ClaimOrderRequest identifies the runner attempting the claim.
type ClaimOrderRequest struct {
	RunnerID string `json:"runner_id"`
}

// TransitionOrderRequest drives one edge of the order's status graph.
type TransitionOrderRequest struct {
	ActorID          string `json:"actor_id"`
	ActorRole        string `json:"actor_role"`
	Target           string `json:"target"`
	Message          string `json:"message,omitempty"`
	EstimatedMinutes *int   `json:"estimated_minutes,omitempty"`
}

// PublishLocationRequest is a runner's position report.
type PublishLocationRequest struct {
	RunnerID string  `json:"runner_id"`
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Heading  float64 `json:"heading,omitempty"`
	Speed    float64 `json:"speed,omitempty"`
	Accuracy float64 `json:"accuracy,omitempty"`
	Source   string  `json:"source,omitempty"`
}

// CreateRunnerRequest registers a new runner.
type CreateRunnerRequest struct {
	Name string `json:"name"`
}

// CreateRunnerResponse identifies the runner that was just registered.
type CreateRunnerResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// SetRunnerAvailabilityRequest toggles a runner online or offline.
type SetRunnerAvailabilityRequest struct {
	Availability string `json:"availability"`
}

// Order is the full order read model on the wire.
type Order struct {
	ID               string        `json:"id"`
	OrderNumber      string        `json:"order_number"`
	BuyerID          string        `json:"buyer_id"`
	SellerID         string        `json:"seller_id"`
	RunnerID         *string       `json:"runner_id,omitempty"`
	Fulfillment      string        `json:"fulfillment"`
	DeliveryType     string        `json:"delivery_type"`
	Status           string        `json:"status"`
	Pickup           WaypointBody  `json:"pickup"`
	Dropoff          *WaypointBody `json:"dropoff,omitempty"`
	Pricing          PricingBody   `json:"pricing"`
	EstimatedMinutes *int          `json:"estimated_minutes,omitempty"`
	CreatedAt        time.Time     `json:"created_at"`
	AcceptedAt       *time.Time    `json:"accepted_at,omitempty"`
	PickedUpAt       *time.Time    `json:"picked_up_at,omitempty"`
	DeliveredAt      *time.Time    `json:"delivered_at,omitempty"`
}

// ClaimableOrder is one entry of the runner-facing claim feed.
type ClaimableOrder struct {
	ID            string    `json:"id"`
	OrderNumber   string    `json:"order_number"`
	PickupAddress string    `json:"pickup_address"`
	PickupLat     float64   `json:"pickup_lat"`
	PickupLng     float64   `json:"pickup_lng"`
	TotalCents    int64     `json:"total_cents"`
	CreatedAt     time.Time `json:"created_at"`
}

// TimelineEntry is one row of the order's audit trail.
type TimelineEntry struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	ActorID   string    `json:"actor_id"`
	ActorRole string    `json:"actor_role"`
	CreatedAt time.Time `json:"created_at"`
}

// Runner is the runner read model on the wire.
type Runner struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability string `json:"availability"`
}

// Location is the order's latest position sample on the wire.
type Location struct {
	OrderID   string    `json:"order_id"`
	RunnerID  string    `json:"runner_id"`
	Lat       float64   `json:"lat"`
	Lng       float64   `json:"lng"`
	Heading   float64   `json:"heading"`
	Speed     float64   `json:"speed"`
	Accuracy  float64   `json:"accuracy"`
	Source    string    `json:"source"`
	UpdatedAt time.Time `json:"updated_at"`
}

func orderFromReadModel(model queries.GetOrderQueryResponse) Order {
	resp := Order{
		ID:               model.ID.String(),
		OrderNumber:      model.OrderNumber,
		BuyerID:          model.BuyerID.String(),
		SellerID:         model.SellerID.String(),
		Fulfillment:      model.Fulfillment,
		DeliveryType:     model.DeliveryType,
		Status:           model.Status,
		Pickup:           WaypointBody(model.Pickup),
		Pricing:          PricingBody(model.Pricing),
		EstimatedMinutes: model.EstimatedMinutes,
		CreatedAt:        model.CreatedAt,
		AcceptedAt:       model.AcceptedAt,
		PickedUpAt:       model.PickedUpAt,
		DeliveredAt:      model.DeliveredAt,
	}

	if model.RunnerID != nil {
		runnerID := model.RunnerID.String()
		resp.RunnerID = &runnerID
	}
	if model.Dropoff != nil {
		dropoff := WaypointBody(*model.Dropoff)
		resp.Dropoff = &dropoff
	}

	return resp
}
