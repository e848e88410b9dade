// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"dispatch/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// RunnerRepoFactory provides access to runner repository within a transaction.
	RunnerRepoFactory interface {
		RunnerRepository() ports.RunnerRepository
	}

	// LocationRepoFactory provides access to location repository within a transaction.
	LocationRepoFactory interface {
		LocationRepository() ports.LocationRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used when commands only modify order aggregates.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// RunnerUoW manages transactions for runner-only operations.
	// Used when commands only modify runner aggregates.
	RunnerUoW interface {
		TxManager
		RunnerRepoFactory
	}

	// RunnerUoWFactory creates new runner unit of work instances.
	RunnerUoWFactory interface {
		Create() RunnerUoW
	}

	// UoW manages transactions across order and runner aggregates.
	// Used for commands that coordinate changes between both aggregate types,
	// such as claiming an order or releasing its runner on completion.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   orderRepo := uow.OrderRepository()
	//   runnerRepo := uow.RunnerRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		RunnerRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}

	// LocationUoW manages transactions for location publishing.
	// Needs the order repository to check the tracking window before writing.
	LocationUoW interface {
		TxManager
		OrderRepoFactory
		LocationRepoFactory
	}

	// LocationUoWFactory creates new location unit of work instances.
	LocationUoWFactory interface {
		Create() LocationUoW
	}
)
