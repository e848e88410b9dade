// Package services provides domain services that implement business rules
// spanning multiple aggregates of the delivery lifecycle.
//
// The package includes:
//   - AccessGuard: pure, stateless authorization predicates for claims,
//     status transitions, and location tracking access
//
// Domain services coordinate between aggregates, implementing business logic
// that doesn't naturally belong to a single aggregate root, following
// Domain-Driven Design principles.
package services
