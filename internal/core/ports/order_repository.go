// Package ports defines the contracts between the dispatch use cases and
// infrastructure: repositories, the unit of work, caller authentication and
// event publishing.
package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Every method runs inside the transaction of the unit of work that created
// the repository.
type OrderRepository interface {
	// Add persists a new order with its line items. A second active order of
	// the same consumer is rejected by the store with errs.ConflictError.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the status and courier of an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its line items.
	// Returns errs.ObjectNotFoundError when the id is unknown.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// HasActiveOrder reports whether the consumer has an order that is not
	// yet delivered.
	HasActiveOrder(ctx context.Context, consumerID kernel.UUID) (bool, error)

	// ClaimReady applies a claim transition as one conditional update.
	//
	// Errors:
	//   - errs.CourierBusyError when the courier already has an order on the way
	//   - errs.ObjectNotFoundError when the order does not exist
	//   - errs.AlreadyClaimedError when the order is no longer claimable
	ClaimReady(ctx context.Context, claim order.Transition) (*order.Order, error)
}
