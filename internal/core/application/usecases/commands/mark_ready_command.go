package commands

import (
	"errors"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrMarkReadyCommandIsNotConstructed = errors.New(
	"MarkReadyCommand must be created via NewMarkReadyCommand constructor",
)

// MarkReadyCommand represents a restaurant handing a cooked order over for pick-up.
type MarkReadyCommand struct { //nolint:recvcheck //using for validation
	orderID      kernel.UUID
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

// NewMarkReadyCommand requires a restaurant identity.
func NewMarkReadyCommand(caller identity.Identity, orderID kernel.UUID) (MarkReadyCommand, error) {
	restaurantID, err := caller.Require(identity.Restaurant)
	if err != nil {
		return MarkReadyCommand{}, err
	}
	if err = orderID.Validate(); err != nil {
		return MarkReadyCommand{}, err
	}

	return MarkReadyCommand{
		orderID:      orderID,
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (c MarkReadyCommand) Validate() error {
	return c.guard.Validate(ErrMarkReadyCommandIsNotConstructed)
}

func (c MarkReadyCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c MarkReadyCommand) RestaurantID() kernel.UUID {
	return c.restaurantID
}
