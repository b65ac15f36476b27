// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// persistence, then notification after commit.
package commands

import (
	"context"

	"kitchen/internal/core/application/notifications"
	"kitchen/internal/core/ports"
)

// EventPublisher delivers notification events to connected observers.
// Handlers publish synchronously after the store commit, never before, so an
// observer can always find the order a notification refers to.
type EventPublisher interface {
	Broadcast(event notifications.Event)
}

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across repository calls.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// UserRepoFactory provides access to the user repository within a transaction.
	UserRepoFactory interface {
		UserRepository() ports.UserRepository
	}

	// MenuRepoFactory provides access to the menu repository within a transaction.
	MenuRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by status transitions, which touch nothing but the order row.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlacementUoW manages transactions for order placement, which resolves
	// the member and menu item references before writing the order.
	PlacementUoW interface {
		TxManager
		OrderRepoFactory
		UserRepoFactory
		MenuRepoFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// MenuUoW manages transactions for catalog maintenance.
	MenuUoW interface {
		TxManager
		MenuRepoFactory
	}

	// MenuUoWFactory creates new menu unit of work instances.
	MenuUoWFactory interface {
		Create() MenuUoW
	}
)
