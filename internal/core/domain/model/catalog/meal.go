package catalog

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrMealIsNotConstructed = errors.New("Meal must be created via NewMeal constructor")

// Meal is a priced item of one restaurant's catalog.
type Meal struct {
	id           kernel.UUID
	restaurantID kernel.UUID
	name         string
	price        kernel.Money
	createdAt    time.Time

	guard guard.ConstructorGuard
}

func NewMeal(id, restaurantID kernel.UUID, name string, price kernel.Money, createdAt time.Time) (*Meal, error) {
	m := &Meal{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		m.setID(id),
		m.setRestaurantID(restaurantID),
		m.setName(name),
		m.setPrice(price),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Meal) Validate() error {
	if m == nil {
		return ErrMealIsNotConstructed
	}
	return m.guard.Validate(ErrMealIsNotConstructed)
}

func (m *Meal) ID() kernel.UUID {
	return m.id
}

func (m *Meal) RestaurantID() kernel.UUID {
	return m.restaurantID
}

// BelongsTo reports whether the meal is on restaurantID's menu.
func (m *Meal) BelongsTo(restaurantID kernel.UUID) bool {
	return m.restaurantID.IsEqual(restaurantID)
}

func (m *Meal) Name() string {
	return m.name
}

// Price is the current unit price.
func (m *Meal) Price() kernel.Money {
	return m.price
}

func (m *Meal) CreatedAt() time.Time {
	return m.createdAt
}

func (m *Meal) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *Meal) setRestaurantID(restaurantID kernel.UUID) error {
	if err := restaurantID.Validate(); err != nil {
		return err
	}
	m.restaurantID = restaurantID
	return nil
}

func (m *Meal) setName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return errs.NewValueIsRequiredError("name")
	}
	m.name = trimmed
	return nil
}

func (m *Meal) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	m.price = price
	return nil
}
