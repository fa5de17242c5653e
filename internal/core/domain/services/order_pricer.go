package services

import (
	"fmt"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"
)

// ItemRequest is one requested meal and quantity before pricing.
type ItemRequest struct {
	MealID   kernel.UUID
	Quantity int
}

// Quote is the priced form of an order request: line items with price
// snapshots and their summed total.
type Quote struct {
	Items []*order.LineItem
	Total kernel.Money
}

// OrderPricer is a stateless domain service computing line and order totals
// with exact decimal arithmetic.
//
// Business rules:
//   - Quantity must be positive
//   - Every meal must belong to the restaurant the order is placed with
//   - The order total is the sum of all line totals
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	quote, err := pricer.Quote(restaurantID, requests, mealsByID)
//	if err != nil {
//	    return err
//	}
//	o, err := order.NewOrder(id, consumerID, restaurantID, address, quote.Items, quote.Total, now)
type OrderPricer struct{}

func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// LineTotal returns meal.Price() * quantity.
func (p OrderPricer) LineTotal(meal *catalog.Meal, quantity int) (kernel.Money, error) {
	if err := meal.Validate(); err != nil {
		return kernel.Money{}, err
	}
	if quantity <= 0 {
		return kernel.Money{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity is invalid",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}
	return meal.Price().Mul(quantity)
}

// OrderTotal sums the sub-totals of items. An empty slice or a sum above
// kernel.MaxMoney is a validation error.
func (p OrderPricer) OrderTotal(items []*order.LineItem) (kernel.Money, error) {
	if len(items) == 0 {
		return kernel.Money{}, errs.NewValueIsRequiredError("items")
	}

	total := kernel.ZeroMoney()
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return kernel.Money{}, err
		}
		var err error
		if total, err = total.Add(item.SubTotal()); err != nil {
			return kernel.Money{}, err
		}
	}
	return total, nil
}

// Quote prices every request against meals (keyed by meal id string) and
// builds the line items of a new order for restaurantID.
func (p OrderPricer) Quote(
	restaurantID kernel.UUID,
	requests []ItemRequest,
	meals map[string]*catalog.Meal,
) (Quote, error) {
	if len(requests) == 0 {
		return Quote{}, errs.NewValueIsRequiredError("items")
	}

	items := make([]*order.LineItem, 0, len(requests))
	for _, req := range requests {
		meal, ok := meals[req.MealID.String()]
		if !ok || !meal.BelongsTo(restaurantID) {
			return Quote{}, errs.NewValueIsInvalidErrorWithCause(
				"items",
				fmt.Errorf("meal %s is not on the menu of restaurant %s", req.MealID, restaurantID),
			)
		}

		subTotal, err := p.LineTotal(meal, req.Quantity)
		if err != nil {
			return Quote{}, err
		}

		item, err := order.NewLineItem(kernel.NewUUID(), meal.ID(), req.Quantity, subTotal)
		if err != nil {
			return Quote{}, err
		}
		items = append(items, item)
	}

	total, err := p.OrderTotal(items)
	if err != nil {
		return Quote{}, err
	}

	return Quote{Items: items, Total: total}, nil
}
