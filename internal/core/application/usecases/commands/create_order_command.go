package commands

import (
	"errors"
	"strings"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/services"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a consumer placing an order with one restaurant.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(caller, restaurantID, "1 Main St", []services.ItemRequest{
//	    {MealID: pho, Quantity: 2},
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	consumerID   kernel.UUID
	restaurantID kernel.UUID
	address      string
	items        []services.ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. The caller must be a
// consumer; any other identity kind yields errs.ForbiddenError.
func NewCreateOrderCommand(
	caller identity.Identity,
	restaurantID kernel.UUID,
	address string,
	items []services.ItemRequest,
) (CreateOrderCommand, error) {
	consumerID, err := caller.Require(identity.Consumer)
	if err != nil {
		return CreateOrderCommand{}, err
	}

	cmd := CreateOrderCommand{
		consumerID: consumerID,
		guard:      guard.NewConstructorGuard(),
	}

	if err = errors.Join(
		cmd.setRestaurantID(restaurantID),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) ConsumerID() kernel.UUID {
	return c.consumerID
}

func (c CreateOrderCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}

func (c CreateOrderCommand) Address() string {
	return c.address
}

// Items returns a copy of the requested meals.
func (c CreateOrderCommand) Items() []services.ItemRequest {
	items := make([]services.ItemRequest, len(c.items))
	copy(items, c.items)
	return items
}

// MealIDs returns the distinct meal ids referenced by the items.
func (c CreateOrderCommand) MealIDs() []kernel.UUID {
	seen := make(map[string]struct{}, len(c.items))
	ids := make([]kernel.UUID, 0, len(c.items))
	for _, item := range c.items {
		if _, ok := seen[item.MealID.String()]; ok {
			continue
		}
		seen[item.MealID.String()] = struct{}{}
		ids = append(ids, item.MealID)
	}
	return ids
}

func (c *CreateOrderCommand) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	c.restaurantID = restaurantID
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	trimmed := strings.TrimSpace(address)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = trimmed
	return nil
}

func (c *CreateOrderCommand) setItems(items []services.ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.MealID.Validate(); err != nil {
			return err
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError("quantity", item.Quantity, 1, "unbounded")
		}
	}

	c.items = make([]services.ItemRequest, len(items))
	copy(c.items, items)
	return nil
}
