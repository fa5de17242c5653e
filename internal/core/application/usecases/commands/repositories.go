// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"fooddelivery/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination it needs.
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

	// MealRepoFactory provides access to the meal catalog within a transaction.
	MealRepoFactory interface {
		MealRepository() ports.MealRepository
	}

	// OutboxRepoFactory provides access to pending outbox messages within a transaction.
	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// AccessTokenRepoFactory provides token maintenance within a transaction.
	AccessTokenRepoFactory interface {
		AccessTokenRepository() ports.AccessTokenRepository
	}

	// OrderUoW manages transactions for order-only operations:
	// claiming, delivering and marking orders ready.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PlaceOrderUoW reads the catalog and writes an order in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   meals, err := uow.MealRepository().GetByIDs(ctx, ids)
	//   // ... price and build the order
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		OrderRepoFactory
		MealRepoFactory
	}

	// PlaceOrderUoWFactory creates new order placement unit of work instances.
	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OutboxUoW manages the relay transaction that locks, publishes and
	// acknowledges outbox messages.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	// OutboxUoWFactory creates new outbox unit of work instances.
	OutboxUoWFactory interface {
		Create() OutboxUoW
	}

	// AccessTokenUoW manages token maintenance transactions.
	AccessTokenUoW interface {
		TxManager
		AccessTokenRepoFactory
	}

	// AccessTokenUoWFactory creates new token maintenance unit of work instances.
	AccessTokenUoWFactory interface {
		Create() AccessTokenUoW
	}
)
