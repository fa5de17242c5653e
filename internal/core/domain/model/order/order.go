package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the dispatch flow. It owns its line items,
// the total frozen at creation and the lifecycle status.
//
// Order follows these invariants:
//   - At least one line item; total equals the sum of the item sub-totals
//   - Delivery address is non-empty
//   - A courier is bound exactly when the status is OnTheWay or Delivered
//   - Status transitions follow the Status state machine
//
// Every state change appends a Transition to the pending list. The repository
// hands pending transitions to the unit of work, which persists them with the
// order row in one database transaction.
type Order struct {
	id           kernel.UUID
	consumerID   kernel.UUID
	restaurantID kernel.UUID
	courierID    *kernel.UUID

	address string
	items   []*LineItem
	total   kernel.Money
	status  Status

	createdAt time.Time
	pickedAt  *time.Time

	pending []Transition

	isConstructed bool
}

// NewOrder creates an order in Cooking status on behalf of consumerID.
//
// Example:
//
//	item, _ := order.NewLineItem(kernel.NewUUID(), mealID, 2, subTotal)
//	o, err := order.NewOrder(kernel.NewUUID(), consumerID, restaurantID, "1 Main St",
//	    []*order.LineItem{item}, subTotal, time.Now())
func NewOrder(
	id, consumerID, restaurantID kernel.UUID,
	address string,
	items []*LineItem,
	total kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Cooking,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items, total),
	); err != nil {
		return nil, err
	}

	o.record(Unknown, consumerID, o.createdAt)
	return o, nil
}

// RestoreOrder rebuilds an order from storage. It checks the same invariants
// as NewOrder plus status/courier consistency, and records no transition.
func RestoreOrder(
	id, consumerID, restaurantID kernel.UUID,
	courierID *kernel.UUID,
	status Status,
	address string,
	items []*LineItem,
	total kernel.Money,
	createdAt time.Time,
	pickedAt *time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setConsumerID(consumerID),
		o.setRestaurantID(restaurantID),
		o.setAddress(address),
		o.setItems(items, total),
		o.setStatus(status, courierID),
	); err != nil {
		return nil, err
	}

	if pickedAt != nil {
		at := pickedAt.UTC()
		o.pickedAt = &at
	}
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ConsumerID() kernel.UUID {
	return o.consumerID
}

func (o *Order) RestaurantID() kernel.UUID {
	return o.restaurantID
}

// Courier returns the bound courier, or nil before pick-up.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) Address() string {
	return o.address
}

// Items returns a copy of the line item slice.
func (o *Order) Items() []*LineItem {
	items := make([]*LineItem, len(o.items))
	copy(items, o.items)
	return items
}

func (o *Order) Total() kernel.Money {
	return o.total
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// PickedAt is set once a courier claims the order.
func (o *Order) PickedAt() *time.Time {
	return o.pickedAt
}

// IsActive reports whether the order still blocks its consumer from
// placing another one.
func (o *Order) IsActive() bool {
	return o.status.IsActive()
}

// MarkReady moves the order from Cooking to Ready. Only the restaurant the
// order was placed with may do this.
func (o *Order) MarkReady(restaurantID kernel.UUID, at time.Time) error {
	if !o.restaurantID.IsEqual(restaurantID) {
		return errs.NewForbiddenError("order belongs to another restaurant")
	}

	newStatus, err := o.status.MarkReady()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.record(from, restaurantID, at)
	return nil
}

// Deliver moves the order from OnTheWay to Delivered. Ownership is checked
// before the transition, so a stranger always gets ForbiddenError.
func (o *Order) Deliver(courierID kernel.UUID, at time.Time) error {
	if o.courierID == nil || !o.courierID.IsEqual(courierID) {
		return errs.NewForbiddenError("order is not assigned to this courier")
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	from := o.status
	o.status = newStatus
	o.record(from, courierID, at)
	return nil
}

// PendingTransitions returns state changes not yet handed to the unit of work.
func (o *Order) PendingTransitions() []Transition {
	pending := make([]Transition, len(o.pending))
	copy(pending, o.pending)
	return pending
}

// ClearPendingTransitions is called by the repository once the transitions
// have been tracked.
func (o *Order) ClearPendingTransitions() {
	o.pending = nil
}

func (o *Order) record(from Status, actorID kernel.UUID, at time.Time) {
	o.pending = append(o.pending, newTransition(o.id, from, o.status, actorID, at))
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setConsumerID(consumerID kernel.UUID) error {
	if err := consumerID.Validate(); err != nil {
		return err
	}
	o.consumerID = consumerID
	return nil
}

func (o *Order) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	o.restaurantID = restaurantID
	return nil
}

func (o *Order) setAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address")
	}
	o.address = trimmed
	return nil
}

func (o *Order) setItems(items []*LineItem, total kernel.Money) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}
	if err := total.Validate(); err != nil {
		return err
	}

	sum := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		var err error
		if sum, err = sum.Add(item.SubTotal()); err != nil {
			return err
		}
	}

	if !sum.IsEqual(total) {
		return errs.NewValueIsInvalidErrorWithCause(
			"total is invalid",
			fmt.Errorf("%s does not match line items sum %s", total, sum),
		)
	}

	o.items = items
	o.total = total
	return nil
}

func (o *Order) setStatus(status Status, courierID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if courierID != nil {
		if err := courierID.Validate(); err != nil {
			return err
		}
	}
	if err := status.ValidateCanHaveCourier(courierID != nil); err != nil {
		return err
	}

	o.status = status
	o.courierID = courierID
	return nil
}
