package commands

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/tracking"
	"dispatch/internal/pkg/guard"
)

var ErrPublishLocationCommandIsNotConstructed = errors.New(
	"PublishLocationCommand must be created via NewPublishLocationCommand constructor",
)

// PublishLocationCommand represents a runner's position report for an order
// in flight. Only the latest report is kept; older reports are overwritten.
//
// Example:
//
//	cmd, err := NewPublishLocationCommand(
//	    orderID, runnerID, 40.4433, -79.9436, 90, 2.5, 5, tracking.GPS)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewPublishLocationCommandHandler(uowFactory)
//	err = handler.Handle(ctx, cmd)
type PublishLocationCommand struct { //nolint:recvcheck //using for validation
	orderID  kernel.UUID
	runnerID kernel.UUID
	lat      float64
	lng      float64
	heading  float64
	speed    float64
	accuracy float64
	source   tracking.Source

	guard guard.ConstructorGuard
}

// NewPublishLocationCommand creates a command to publish a position report.
// Coordinate and telemetry validation happens when the sample is built, so
// the command only checks identifiers and the source here.
func NewPublishLocationCommand(
	orderID kernel.UUID,
	runnerID kernel.UUID,
	lat float64,
	lng float64,
	heading float64,
	speed float64,
	accuracy float64,
	source tracking.Source,
) (PublishLocationCommand, error) {
	command := PublishLocationCommand{
		lat:      lat,
		lng:      lng,
		heading:  heading,
		speed:    speed,
		accuracy: accuracy,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setRunnerID(runnerID),
		command.setSource(source),
	); err != nil {
		return PublishLocationCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPublishLocationCommandIsNotConstructed if validation fails.
func (c PublishLocationCommand) Validate() error {
	return c.guard.Validate(ErrPublishLocationCommandIsNotConstructed)
}

// OrderID returns the order the report belongs to.
func (c PublishLocationCommand) OrderID() kernel.UUID {
	return c.orderID
}

// RunnerID returns the reporting runner.
func (c PublishLocationCommand) RunnerID() kernel.UUID {
	return c.runnerID
}

// Lat returns the reported latitude.
func (c PublishLocationCommand) Lat() float64 {
	return c.lat
}

// Lng returns the reported longitude.
func (c PublishLocationCommand) Lng() float64 {
	return c.lng
}

// Heading returns the reported heading in degrees.
func (c PublishLocationCommand) Heading() float64 {
	return c.heading
}

// Speed returns the reported speed in m/s.
func (c PublishLocationCommand) Speed() float64 {
	return c.speed
}

// Accuracy returns the reported accuracy radius in meters.
func (c PublishLocationCommand) Accuracy() float64 {
	return c.accuracy
}

// Source returns how the position was obtained.
func (c PublishLocationCommand) Source() tracking.Source {
	return c.source
}

func (c *PublishLocationCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *PublishLocationCommand) setRunnerID(runnerID kernel.UUID) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	c.runnerID = runnerID
	return nil
}

func (c *PublishLocationCommand) setSource(source tracking.Source) error {
	if err := source.Validate(); err != nil {
		return err
	}

	c.source = source
	return nil
}
