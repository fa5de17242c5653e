// Package order provides the Order aggregate of the food dispatch domain.
//
// The package includes:
//   - Order: the aggregate root holding line items, the frozen total and the lifecycle
//   - LineItem: a meal, its quantity and the sub-total priced at creation
//   - Status: the state machine Cooking -> Ready -> OnTheWay -> Delivered
//   - Transition: one recorded status change, written to history and the outbox
//
// Key business rules:
//   - Totals never change after creation, even if meal prices change later
//   - A courier is bound exactly when the order is OnTheWay or Delivered
//   - Only the bound courier may deliver; only the owning restaurant may mark ready
//   - Illegal edges return errs.InvalidTransitionError and leave the order unchanged
//
// The claim edge (Ready -> OnTheWay) is not applied to a loaded aggregate:
// NewClaimTransition computes it and the repository executes it as a single
// conditional update, so concurrent claims cannot both win.
package order
