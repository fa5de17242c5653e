// Package catalogrepo reads restaurants and meals with GORM.
package catalogrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RestaurantDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null;index"`
}

func (RestaurantDTO) TableName() string {
	return "restaurants"
}

type MealDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name         string          `gorm:"not null"`
	Price        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
}

func (MealDTO) TableName() string {
	return "meals"
}

func mealToDomain(dto MealDTO) (*catalog.Meal, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}
	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}
	return catalog.NewMeal(id, restaurantID, dto.Name, price, dto.CreatedAt)
}

// MealFromDomain maps a meal to its row. Used by seeding and tests.
func MealFromDomain(m *catalog.Meal) MealDTO {
	return MealDTO{
		ID:           m.ID().Bytes(),
		RestaurantID: m.RestaurantID().Bytes(),
		Name:         m.Name(),
		Price:        m.Price().Decimal(),
		CreatedAt:    m.CreatedAt(),
	}
}

// RestaurantFromDomain maps a restaurant to its row.
func RestaurantFromDomain(r *catalog.Restaurant) RestaurantDTO {
	return RestaurantDTO{
		ID:        r.ID().Bytes(),
		Name:      r.Name(),
		CreatedAt: r.CreatedAt(),
	}
}
