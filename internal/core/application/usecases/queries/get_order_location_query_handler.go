package queries

import (
	"context"

	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
)

// GetOrderLocationQueryHandler retrieves the latest runner position for an
// order. Unlike the other read handlers it goes through the repositories
// rather than raw SQL: the visibility check needs the order aggregate, and
// the sample must be reconstructed through its validating constructor.
type GetOrderLocationQueryHandler struct {
	uowFactory  ports.UnitOfWorkFactory
	accessGuard services.AccessGuard
}

// NewGetOrderLocationQueryHandler creates a handler for location read queries.
func NewGetOrderLocationQueryHandler(uowFactory ports.UnitOfWorkFactory) GetOrderLocationQueryHandler {
	return GetOrderLocationQueryHandler{
		uowFactory:  uowFactory,
		accessGuard: services.NewAccessGuard(),
	}
}

// Handle executes the query to retrieve an order's current position.
//
// Returns services.ErrLocationNotVisible if the requester is neither the
// order's buyer nor its assigned runner, and errs.ErrObjectNotFound if the
// order does not exist or no sample has been published yet.
func (h GetOrderLocationQueryHandler) Handle(
	ctx context.Context,
	query GetOrderLocationQuery,
) (GetOrderLocationQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	uow := h.uowFactory.Create()

	trackedOrder, err := uow.OrderRepository().Get(ctx, query.OrderID())
	if err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	if err = h.accessGuard.CanReadLocation(query.RequesterID(), trackedOrder); err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	sample, err := uow.LocationRepository().GetByOrder(ctx, query.OrderID())
	if err != nil {
		return GetOrderLocationQueryResponse{}, err
	}

	return GetOrderLocationQueryResponse{
		OrderID:   sample.OrderID(),
		RunnerID:  sample.RunnerID(),
		Lat:       sample.Point().Lat(),
		Lng:       sample.Point().Lng(),
		Heading:   sample.Heading(),
		Speed:     sample.Speed(),
		Accuracy:  sample.Accuracy(),
		Source:    sample.Source().String(),
		UpdatedAt: sample.UpdatedAt(),
	}, nil
}
