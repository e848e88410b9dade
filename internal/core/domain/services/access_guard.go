package services

import (
	"errors"
	"fmt"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/runner"
)

var (
	// ErrActorNotAllowed is returned when an actor or role is not permitted
	// to drive the requested status edge.
	ErrActorNotAllowed = errors.New("actor is not allowed to perform this transition")

	// ErrLocationNotWritable is returned when a position publish falls
	// outside the permitted writer or the order's active window. This is a
	// security boundary, not a transient error to retry.
	ErrLocationNotWritable = errors.New("location is not writable for this order")

	// ErrLocationNotVisible is returned when a requester is not permitted to
	// read an order's position. Visibility is binary: no partial or redacted
	// records are ever returned.
	ErrLocationNotVisible = errors.New("location is not visible to this requester")
)

// AccessGuard centralizes the authorization predicates of the delivery
// lifecycle. Every rule about who may claim, transition, publish, or read is
// implemented here as a pure, stateless function over already-loaded
// aggregates; no other component re-implements these rules inline. Keeping
// them in one place prevents the two fulfillment modes from silently
// diverging in what they permit.
type AccessGuard struct{}

// NewAccessGuard creates a new AccessGuard instance.
func NewAccessGuard() AccessGuard {
	return AccessGuard{}
}

// CanClaim reports whether the runner may claim the order.
//
// A claim requires:
//   - the runner to be online
//   - the order to be network-fulfilled, pending, and unassigned
//
// Returns an error wrapping runner.ErrRunnerNotOnline or
// order.ErrOrderNotClaimable describing the first violated rule.
func (g AccessGuard) CanClaim(r *runner.Runner, o *order.Order) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if err := o.Validate(); err != nil {
		return err
	}

	if r.Availability() != runner.Online {
		return fmt.Errorf("%w: availability is %s", runner.ErrRunnerNotOnline, r.Availability())
	}
	if o.Fulfillment() != order.NetworkFulfilled {
		return fmt.Errorf("%w: %s orders have no claim step", order.ErrOrderNotClaimable, o.Fulfillment())
	}
	if o.Status() != order.Pending {
		return fmt.Errorf("%w: status is %s", order.ErrOrderNotClaimable, o.Status())
	}
	if o.RunnerID() != nil {
		return fmt.Errorf("%w: already assigned", order.ErrOrderNotClaimable)
	}

	return nil
}

// CanTransition reports whether the actor, acting in the given role, may
// drive the order to the target status.
//
// Rules:
//   - Buyer and system actors may only request cancellation; the buyer must
//     be the order's buyer.
//   - The seller drives every forward edge of merchant-fulfilled orders and
//     nothing else.
//   - The assigned runner drives every forward edge of network-fulfilled
//     orders past accepted and nothing else.
//
// Whether the edge itself exists in the status graph is validated
// separately by the order aggregate.
func (g AccessGuard) CanTransition(
	actorID kernel.UUID,
	role order.ActorRole,
	o *order.Order,
	target order.Status,
) error {
	if err := actorID.Validate(); err != nil {
		return err
	}
	if err := role.Validate(); err != nil {
		return err
	}

	if target == order.Cancelled {
		switch role { //nolint:exhaustive // all other roles fall through to denial
		case order.ActorSystem:
			return nil
		case order.ActorBuyer:
			if actorID.IsEqual(o.BuyerID()) {
				return nil
			}
			return fmt.Errorf("%w: actor %s is not the buyer of order %s",
				ErrActorNotAllowed, actorID, o.ID())
		}
		return fmt.Errorf("%w: role %s may not cancel", ErrActorNotAllowed, role)
	}

	switch role { //nolint:exhaustive // all other roles fall through to denial
	case order.ActorSeller:
		if o.Fulfillment() != order.MerchantFulfilled {
			return fmt.Errorf("%w: seller may not drive %s orders", ErrActorNotAllowed, o.Fulfillment())
		}
		if !actorID.IsEqual(o.SellerID()) {
			return fmt.Errorf("%w: actor %s is not the seller of order %s",
				ErrActorNotAllowed, actorID, o.ID())
		}
		return nil
	case order.ActorRunner:
		if o.Fulfillment() != order.NetworkFulfilled {
			return fmt.Errorf("%w: runner may not drive %s orders", ErrActorNotAllowed, o.Fulfillment())
		}
		if o.RunnerID() == nil || !actorID.IsEqual(*o.RunnerID()) {
			return fmt.Errorf("%w: actor %s is not the assigned runner of order %s",
				ErrActorNotAllowed, actorID, o.ID())
		}
		return nil
	}

	return fmt.Errorf("%w: role %s may only request cancellation", ErrActorNotAllowed, role)
}

// CanWriteLocation reports whether the runner may publish a position sample
// for the order. Publishing requires the runner to be the order's assigned
// runner and the order to be inside its active window: a network-fulfilled
// order in accepted or picked_up status. Tracking starts once a runner owns
// the job and stops once the item is handed off.
func (g AccessGuard) CanWriteLocation(runnerID kernel.UUID, o *order.Order) error {
	if err := runnerID.Validate(); err != nil {
		return err
	}

	if o.Fulfillment() != order.NetworkFulfilled {
		return fmt.Errorf("%w: %s orders are not tracked", ErrLocationNotWritable, o.Fulfillment())
	}
	if o.RunnerID() == nil || !runnerID.IsEqual(*o.RunnerID()) {
		return fmt.Errorf("%w: %s is not the assigned runner", ErrLocationNotWritable, runnerID)
	}
	if o.Status() != order.Accepted && o.Status() != order.PickedUp {
		return fmt.Errorf("%w: status %s is outside the active window", ErrLocationNotWritable, o.Status())
	}

	return nil
}

// CanReadLocation reports whether the requester may read the order's current
// position sample. Only the order's buyer and its assigned runner are
// location subscribers; sellers are not.
func (g AccessGuard) CanReadLocation(requesterID kernel.UUID, o *order.Order) error {
	if err := requesterID.Validate(); err != nil {
		return err
	}

	if requesterID.IsEqual(o.BuyerID()) {
		return nil
	}
	if o.RunnerID() != nil && requesterID.IsEqual(*o.RunnerID()) {
		return nil
	}

	return fmt.Errorf("%w: %s is neither the buyer nor the assigned runner",
		ErrLocationNotVisible, requesterID)
}
