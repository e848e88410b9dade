package runner

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrNameIsRequired is returned when attempting to create a runner without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")

	// ErrRunnerIsNotConstructed is returned when using an improperly initialized Runner.
	ErrRunnerIsNotConstructed = errors.New("Runner must be created via NewRunner or RestoreRunner constructor")

	// ErrRunnerNotOnline is returned when marking a runner busy while they are
	// not online. Only an online runner can win a claim.
	ErrRunnerNotOnline = errors.New("runner is not online")

	// ErrRunnerIsBusy is returned when a busy runner tries to change their own
	// availability. Busy clears only when the claimed order terminates.
	ErrRunnerIsBusy = errors.New("runner is busy with a claimed order")
)

// Runner represents an independent delivery agent who claims and carries
// network-fulfilled orders. It is an aggregate root managing the runner's
// identity and availability.
//
// Business rules:
//   - A runner must have a valid UUID and a non-empty name
//   - Only an online runner becomes busy (on a successful claim)
//   - A busy runner returns to online only when the claimed order reaches a
//     terminal status; they cannot go offline mid-job
//
// Example usage:
//
//	r, err := runner.NewRunner(kernel.NewUUID(), "Sam")
//	if err != nil {
//	    // Handle construction error
//	}
//	_ = r.SetOnline()
type Runner struct {
	id           kernel.UUID
	name         string
	availability Availability
	guard        guard.ConstructorGuard
}

// NewRunner creates a new Runner starting in the offline state.
func NewRunner(id kernel.UUID, name string) (*Runner, error) {
	r := &Runner{
		availability: Offline,
		guard:        guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreRunner reconstructs a Runner aggregate from persistent storage.
func RestoreRunner(id kernel.UUID, name string, availability Availability) (*Runner, error) {
	r := &Runner{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setName(name),
		availability.Validate(),
	); err != nil {
		return nil, err
	}

	r.availability = availability
	return r, nil
}

// Validate ensures the Runner was properly constructed.
func (r *Runner) Validate() error {
	if r == nil {
		return ErrRunnerIsNotConstructed
	}
	return r.guard.Validate(ErrRunnerIsNotConstructed)
}

// ID returns the runner's unique identifier.
func (r *Runner) ID() kernel.UUID {
	return r.id
}

// Name returns the runner's display name.
func (r *Runner) Name() string {
	return r.name
}

// Availability returns the runner's current availability.
func (r *Runner) Availability() Availability {
	return r.availability
}

// IsEqual compares two runners by their unique identifiers.
func (r *Runner) IsEqual(other *Runner) bool {
	return other != nil && r.id.IsEqual(other.id)
}

// SetOnline marks the runner as accepting jobs.
// A busy runner cannot toggle availability; the claimed order must
// terminate first.
func (r *Runner) SetOnline() error {
	if r.availability == Busy {
		return ErrRunnerIsBusy
	}
	r.availability = Online
	return nil
}

// SetOffline marks the runner as not accepting jobs.
// A busy runner cannot go offline mid-job.
func (r *Runner) SetOffline() error {
	if r.availability == Busy {
		return ErrRunnerIsBusy
	}
	r.availability = Offline
	return nil
}

// MarkBusy records that the runner won a claim and is carrying an order.
// Only an online runner can become busy.
func (r *Runner) MarkBusy() error {
	if r.availability != Online {
		return fmt.Errorf("%w: availability is %s", ErrRunnerNotOnline, r.availability)
	}
	r.availability = Busy
	return nil
}

// Release returns a busy runner to online after their claimed order reached
// a terminal status. Releasing a non-busy runner is a no-op: the claim flow
// is the single writer of busy, so nothing else can have raced it away.
func (r *Runner) Release() {
	if r.availability == Busy {
		r.availability = Online
	}
}

func (r *Runner) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Runner) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	r.name = name
	return nil
}
