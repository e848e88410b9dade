// Package order provides domain entities and business logic for the delivery
// order lifecycle. It implements the Order aggregate root with its status
// state machine, runner assignment rules, and append-only audit trail.
//
// The package includes:
//   - Order: The aggregate root that owns identity, parties, pricing, and lifecycle
//   - Status: A state machine parameterized by fulfillment mode and delivery type
//   - StatusEvent: An immutable audit-trail entry per committed transition
//   - Waypoint: An address plus validated coordinates
//   - Pricing: The immutable monetary breakdown fixed at placement
//
// Key business rules:
//   - A pending network-fulfilled order leaves pending only through a claim
//   - Status transitions follow the mode-specific graph; cancellation is
//     reachable from any non-terminal status
//   - A runner is assigned iff the order is network-fulfilled and past pending
//   - Lifecycle timestamps are stamped once and never move
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
