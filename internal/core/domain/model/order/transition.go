package order

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrTransitionIsNotConstructed = errors.New("Transition must be created by the order status machine")

// Transition records one status change of an order: who caused it and when.
// Transitions are collected by the unit of work and written to the status
// history and the outbox in the same database transaction as the change.
type Transition struct {
	orderID    kernel.UUID
	from       Status
	to         Status
	actorID    kernel.UUID
	occurredAt time.Time

	guard guard.ConstructorGuard
}

// NewClaimTransition computes the Ready -> OnTheWay edge for courierID.
// It carries no knowledge of the stored row; the repository applies it as a
// conditional update guarded by From().
func NewClaimTransition(orderID, courierID kernel.UUID, pickedAt time.Time) (Transition, error) {
	if err := errors.Join(orderID.Validate(), courierID.Validate()); err != nil {
		return Transition{}, err
	}

	to, err := Ready.PickUp()
	if err != nil {
		return Transition{}, err
	}

	return newTransition(orderID, Ready, to, courierID, pickedAt), nil
}

func newTransition(orderID kernel.UUID, from, to Status, actorID kernel.UUID, at time.Time) Transition {
	return Transition{
		orderID:    orderID,
		from:       from,
		to:         to,
		actorID:    actorID,
		occurredAt: at.UTC(),
		guard:      guard.NewConstructorGuard(),
	}
}

func (t Transition) Validate() error {
	return t.guard.Validate(ErrTransitionIsNotConstructed)
}

func (t Transition) OrderID() kernel.UUID {
	return t.orderID
}

// From is Unknown for the creation transition.
func (t Transition) From() Status {
	return t.from
}

func (t Transition) To() Status {
	return t.to
}

// ActorID is the consumer, restaurant or courier that caused the change.
func (t Transition) ActorID() kernel.UUID {
	return t.actorID
}

func (t Transition) OccurredAt() time.Time {
	return t.occurredAt
}
