package catalog

import (
	"errors"
	"strings"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/pkg/errs"
	"fooddelivery/internal/pkg/guard"
)

var ErrRestaurantIsNotConstructed = errors.New("Restaurant must be created via NewRestaurant constructor")

// Restaurant owns a meal catalog and prepares orders placed against it.
type Restaurant struct {
	id        kernel.UUID
	name      string
	createdAt time.Time

	guard guard.ConstructorGuard
}

func NewRestaurant(id kernel.UUID, name string, createdAt time.Time) (*Restaurant, error) {
	r := &Restaurant{
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := id.Validate(); err != nil {
		return nil, err
	}
	r.id = id

	r.name = strings.TrimSpace(name)
	if r.name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}

	return r, nil
}

func (r *Restaurant) Validate() error {
	if r == nil {
		return ErrRestaurantIsNotConstructed
	}
	return r.guard.Validate(ErrRestaurantIsNotConstructed)
}

func (r *Restaurant) ID() kernel.UUID {
	return r.id
}

func (r *Restaurant) Name() string {
	return r.name
}

func (r *Restaurant) CreatedAt() time.Time {
	return r.createdAt
}
