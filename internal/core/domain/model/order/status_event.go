package order

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

// ErrStatusEventIsNotConstructed is returned when using an improperly initialized StatusEvent.
var ErrStatusEventIsNotConstructed = errors.New(
	"StatusEvent must be created via NewStatusEvent or RestoreStatusEvent constructor")

// StatusEvent is one append-only entry in an order's audit trail. An event
// is written for every status transition that actually committed; failed
// conditional writes produce no event. Events are immutable once written and
// are totally ordered by append time within a single order.
type StatusEvent struct {
	id        kernel.UUID
	orderID   kernel.UUID
	status    Status
	message   string
	actorID   kernel.UUID
	actorRole ActorRole
	createdAt time.Time
	guard     guard.ConstructorGuard
}

// NewStatusEvent creates a StatusEvent for a committed transition.
// The message is optional free text shown on the order timeline.
func NewStatusEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	message string,
	actorID kernel.UUID,
	actorRole ActorRole,
	createdAt time.Time,
) (StatusEvent, error) {
	if err := errors.Join(
		id.Validate(),
		orderID.Validate(),
		status.Validate(),
		actorID.Validate(),
		actorRole.Validate(),
	); err != nil {
		return StatusEvent{}, err
	}

	return StatusEvent{
		id:        id,
		orderID:   orderID,
		status:    status,
		message:   message,
		actorID:   actorID,
		actorRole: actorRole,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreStatusEvent reconstructs a StatusEvent from persistent storage.
// It applies the same validation as NewStatusEvent.
func RestoreStatusEvent(
	id kernel.UUID,
	orderID kernel.UUID,
	status Status,
	message string,
	actorID kernel.UUID,
	actorRole ActorRole,
	createdAt time.Time,
) (StatusEvent, error) {
	return NewStatusEvent(id, orderID, status, message, actorID, actorRole, createdAt)
}

// Validate checks if the StatusEvent was properly constructed.
func (e StatusEvent) Validate() error {
	return e.guard.Validate(ErrStatusEventIsNotConstructed)
}

// ID returns the event's unique identifier.
func (e StatusEvent) ID() kernel.UUID {
	return e.id
}

// OrderID returns the order the event belongs to.
func (e StatusEvent) OrderID() kernel.UUID {
	return e.orderID
}

// Status returns the status the order reached.
func (e StatusEvent) Status() Status {
	return e.status
}

// Message returns the optional free-text message.
func (e StatusEvent) Message() string {
	return e.message
}

// ActorID returns who drove the transition.
func (e StatusEvent) ActorID() kernel.UUID {
	return e.actorID
}

// ActorRole returns the role of the actor who drove the transition.
func (e StatusEvent) ActorRole() ActorRole {
	return e.actorRole
}

// CreatedAt returns when the event was appended.
func (e StatusEvent) CreatedAt() time.Time {
	return e.createdAt
}
