package queries

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListRestaurantsQueryHandler struct {
	db *gorm.DB
}

func NewListRestaurantsQueryHandler(db *gorm.DB) ListRestaurantsQueryHandler {
	return ListRestaurantsQueryHandler{db: db}
}

// Handle returns restaurants newest first.
func (h ListRestaurantsQueryHandler) Handle(
	ctx context.Context,
	query ListRestaurantsQuery,
) ([]RestaurantResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			created_at
		FROM restaurants
		ORDER BY created_at DESC, id DESC
	`).Rows()
	if err != nil {
		return nil, fmt.Errorf("list restaurants: %w", err)
	}
	defer rows.Close()

	restaurants := make([]RestaurantResponse, 0)
	for rows.Next() {
		var (
			restaurant RestaurantResponse
			id         uuid.UUID
		)
		if err = rows.Scan(&id, &restaurant.Name, &restaurant.CreatedAt); err != nil {
			return nil, err
		}
		if restaurant.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		restaurants = append(restaurants, restaurant)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return restaurants, nil
}
