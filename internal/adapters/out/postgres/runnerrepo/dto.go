// Package runnerrepo provides data transfer objects and mapping functions for runner persistence.
// This package implements the repository pattern for the runner domain aggregate, handling
// the conversion between domain entities and database representations.
package runnerrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/runner"

	"github.com/google/uuid"
)

// RunnerDTO represents the database structure for persisting runner aggregates.
type RunnerDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name         string
	Availability int `gorm:"type:smallint;index"`
}

// TableName specifies the database table name for runner entities.
func (RunnerDTO) TableName() string {
	return "runners"
}

// fromDomain converts a runner domain aggregate to its database representation.
func fromDomain(aggregate *runner.Runner) RunnerDTO {
	return RunnerDTO{
		ID:           aggregate.ID().Bytes(),
		Name:         aggregate.Name(),
		Availability: int(aggregate.Availability()),
	}
}

// toDomain converts a database DTO to a runner domain aggregate.
func toDomain(dto RunnerDTO) (*runner.Runner, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return runner.RestoreRunner(id, dto.Name, runner.Availability(dto.Availability))
}
