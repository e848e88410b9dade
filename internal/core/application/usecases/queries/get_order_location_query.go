package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetOrderLocationQueryIsNotConstructed = errors.New(
	"GetOrderLocationQuery must be created via NewGetOrderLocationQuery constructor",
)

// GetOrderLocationQuery retrieves the latest runner position for an order.
// The requester identity is part of the query because location visibility
// is restricted to the order's participants.
type GetOrderLocationQuery struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	requesterID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderLocationQuery creates a query to retrieve an order's location.
func NewGetOrderLocationQuery(orderID kernel.UUID, requesterID kernel.UUID) (GetOrderLocationQuery, error) {
	query := GetOrderLocationQuery{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		query.setOrderID(orderID),
		query.setRequesterID(requesterID),
	); err != nil {
		return GetOrderLocationQuery{}, err
	}

	return query, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderLocationQueryIsNotConstructed if validation fails.
func (q GetOrderLocationQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderLocationQueryIsNotConstructed)
}

// OrderID returns the order whose location is requested.
func (q GetOrderLocationQuery) OrderID() kernel.UUID {
	return q.orderID
}

// RequesterID returns who is asking for the location.
func (q GetOrderLocationQuery) RequesterID() kernel.UUID {
	return q.requesterID
}

func (q *GetOrderLocationQuery) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	q.orderID = orderID
	return nil
}

func (q *GetOrderLocationQuery) setRequesterID(requesterID kernel.UUID) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	q.requesterID = requesterID
	return nil
}

// GetOrderLocationQueryResponse represents the latest known runner position.
type GetOrderLocationQueryResponse struct {
	OrderID   kernel.UUID
	RunnerID  kernel.UUID
	Lat       float64
	Lng       float64
	Heading   float64
	Speed     float64
	Accuracy  float64
	Source    string
	UpdatedAt time.Time
}
