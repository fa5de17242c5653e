package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/identity"
	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListReadyOrdersQueryIsNotConstructed = errors.New(
	"ListReadyOrdersQuery must be created via NewListReadyOrdersQuery constructor",
)

// ListReadyOrdersQuery lists orders a courier may claim, optionally
// narrowed to one restaurant.
type ListReadyOrdersQuery struct {
	restaurantID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewListReadyOrdersQuery requires a courier identity. A nil restaurantID
// lists ready orders across all restaurants.
func NewListReadyOrdersQuery(caller identity.Identity, restaurantID *kernel.UUID) (ListReadyOrdersQuery, error) {
	if _, err := caller.Require(identity.Courier); err != nil {
		return ListReadyOrdersQuery{}, err
	}
	if restaurantID != nil {
		if err := restaurantID.Validate(); err != nil {
			return ListReadyOrdersQuery{}, err
		}
	}

	return ListReadyOrdersQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListReadyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListReadyOrdersQueryIsNotConstructed)
}

func (q ListReadyOrdersQuery) RestaurantID() *kernel.UUID {
	return q.restaurantID
}

// ReadyOrderResponse is one claimable order.
type ReadyOrderResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Total        kernel.Money
	Address      string
	CreatedAt    time.Time
}
