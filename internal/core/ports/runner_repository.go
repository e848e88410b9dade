// Package ports defines repository interfaces for the delivery domain.
// These interfaces establish contracts between the domain layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"
)

// RunnerRepository defines the persistence contract for runner aggregates.
type RunnerRepository interface {
	// Add persists a new runner aggregate to storage.
	// The runner must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *runner.Runner) error

	// Update persists changes to an existing runner aggregate.
	// The runner must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *runner.Runner) error

	// Get retrieves a runner aggregate by its unique identifier.
	// Returns errs.ErrObjectNotFound if no such runner exists.
	Get(ctx context.Context, id kernel.UUID) (*runner.Runner, error)
}
