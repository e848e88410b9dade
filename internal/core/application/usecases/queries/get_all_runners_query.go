package queries

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var ErrGetAllRunnersQueryIsNotConstructed = errors.New(
	"GetAllRunnersQuery must be created via NewGetAllRunnersQuery constructor",
)

// GetAllRunnersQuery retrieves all registered runners.
type GetAllRunnersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllRunnersQuery creates a query to retrieve all runners.
func NewGetAllRunnersQuery() GetAllRunnersQuery {
	return GetAllRunnersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllRunnersQueryIsNotConstructed if validation fails.
func (q GetAllRunnersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllRunnersQueryIsNotConstructed)
}

// GetAllRunnersQueryResponse represents one runner in the read model.
type GetAllRunnersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	Availability string
}
