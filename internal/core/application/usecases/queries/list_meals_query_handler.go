package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ListMealsQueryHandler struct {
	db *gorm.DB
}

func NewListMealsQueryHandler(db *gorm.DB) ListMealsQueryHandler {
	return ListMealsQueryHandler{db: db}
}

// Handle returns the meals newest first. An unknown restaurant yields an
// empty list, not an error.
func (h ListMealsQueryHandler) Handle(ctx context.Context, query ListMealsQuery) ([]MealResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			restaurant_id,
			name,
			price,
			created_at
		FROM meals
		WHERE restaurant_id = ?
		ORDER BY created_at DESC, id DESC
	`, query.RestaurantID().Bytes()).Rows()
	if err != nil {
		return nil, fmt.Errorf("list meals: %w", err)
	}
	defer rows.Close()

	meals := make([]MealResponse, 0)
	for rows.Next() {
		var (
			meal             MealResponse
			id, restaurantID uuid.UUID
			price            decimal.Decimal
		)
		if err = rows.Scan(&id, &restaurantID, &meal.Name, &price, &meal.CreatedAt); err != nil {
			return nil, err
		}
		if meal.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if meal.RestaurantID, err = toUUID(restaurantID); err != nil {
			return nil, err
		}
		if meal.Price, err = toMoney(price); err != nil {
			return nil, err
		}
		meals = append(meals, meal)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return meals, nil
}
