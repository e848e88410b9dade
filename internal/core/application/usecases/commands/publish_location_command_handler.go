package commands

import (
	"context"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/core/domain/services"
)

// PublishLocationCommandHandler handles runner position reports.
// Reports are accepted only from the assigned runner and only while the
// order is inside the active tracking window; everything else is rejected
// before any write happens.
//
// Example:
//
//	handler := NewPublishLocationCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if errors.Is(err, services.ErrLocationNotWritable) {
//	    // order is not being tracked right now
//	}
type PublishLocationCommandHandler struct {
	uowFactory LocationUoWFactory
	guard      services.AccessGuard
}

// NewPublishLocationCommandHandler creates a handler for position publishing.
// Requires a LocationUoWFactory to read the order and write the sample.
func NewPublishLocationCommandHandler(uowFactory LocationUoWFactory) PublishLocationCommandHandler {
	return PublishLocationCommandHandler{
		uowFactory: uowFactory,
		guard:      services.NewAccessGuard(),
	}
}

// Handle processes the position report.
// Loads the order, checks the tracking window and the reporter, then
// overwrites the order's single location row.
func (h PublishLocationCommandHandler) Handle(ctx context.Context, command PublishLocationCommand) error {
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

	trackedOrder, err := uow.OrderRepository().Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = h.guard.CanWriteLocation(command.RunnerID(), trackedOrder); err != nil {
		return err
	}

	point, err := kernel.NewGeoPoint(command.Lat(), command.Lng())
	if err != nil {
		return err
	}

	sample, err := tracking.NewLocationSample(
		command.OrderID(),
		command.RunnerID(),
		point,
		command.Heading(),
		command.Speed(),
		command.Accuracy(),
		command.Source(),
		time.Now().UTC(),
	)
	if err != nil {
		return err
	}

	if err = uow.LocationRepository().Upsert(ctx, sample); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
