package queries

import (
	"context"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllRunnersQueryHandler retrieves runners from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
type GetAllRunnersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllRunnersQueryHandler creates a handler for runner queries.
// Requires a GORM database connection for query execution.
func NewGetAllRunnersQueryHandler(db *gorm.DB) GetAllRunnersQueryHandler {
	return GetAllRunnersQueryHandler{db: db}
}

// Handle executes the query to retrieve all runners, sorted by name.
func (h GetAllRunnersQueryHandler) Handle(
	ctx context.Context,
	query GetAllRunnersQuery,
) ([]GetAllRunnersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	runners := make([]GetAllRunnersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			availability
		FROM runners
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var resp GetAllRunnersQueryResponse
		var id uuid.UUID
		var availability int

		err = rows.Scan(&id, &resp.Name, &availability)
		if err != nil {
			return nil, err
		}

		runnerID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = runnerID
		resp.Availability = runner.Availability(availability).String()
		runners = append(runners, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return runners, nil
}
