package queries

import (
	"errors"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/guard"
)

var ErrListMealsQueryIsNotConstructed = errors.New(
	"ListMealsQuery must be created via NewListMealsQuery constructor",
)

// ListMealsQuery lists one restaurant's catalog.
type ListMealsQuery struct {
	restaurantID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListMealsQuery(restaurantID kernel.UUID) (ListMealsQuery, error) {
	if err := restaurantID.Validate(); err != nil {
		return ListMealsQuery{}, err
	}

	return ListMealsQuery{
		restaurantID: restaurantID,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func (q ListMealsQuery) Validate() error {
	return q.guard.Validate(ErrListMealsQueryIsNotConstructed)
}

func (q ListMealsQuery) RestaurantID() kernel.UUID {
	return q.restaurantID
}

type MealResponse struct {
	ID           kernel.UUID
	RestaurantID kernel.UUID
	Name         string
	Price        kernel.Money
	CreatedAt    time.Time
}
