package order

import (
	"errors"
	"fmt"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one meal and quantity within an order. SubTotal is the meal
// price snapshot multiplied by quantity at creation time and never changes.
type LineItem struct {
	id       kernel.UUID
	mealID   kernel.UUID
	quantity int
	subTotal kernel.Money

	guard guard.ConstructorGuard
}

// NewLineItem builds a priced line item.
func NewLineItem(id, mealID kernel.UUID, quantity int, subTotal kernel.Money) (*LineItem, error) {
	item := &LineItem{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		item.setID(id),
		item.setMealID(mealID),
		item.setQuantity(quantity),
		item.setSubTotal(subTotal),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *LineItem) Validate() error {
	if i == nil {
		return ErrLineItemIsNotConstructed
	}
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

func (i *LineItem) ID() kernel.UUID {
	return i.id
}

func (i *LineItem) MealID() kernel.UUID {
	return i.mealID
}

func (i *LineItem) Quantity() int {
	return i.quantity
}

func (i *LineItem) SubTotal() kernel.Money {
	return i.subTotal
}

func (i *LineItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *LineItem) setMealID(mealID kernel.UUID) error {
	if err := mealID.Validate(); err != nil {
		return err
	}
	i.mealID = mealID
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *LineItem) setSubTotal(subTotal kernel.Money) error {
	if err := subTotal.Validate(); err != nil {
		return err
	}
	i.subTotal = subTotal
	return nil
}
