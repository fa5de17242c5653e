package ports

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"
)

// MealRepository reads the meal catalog.
type MealRepository interface {
	// GetByIDs returns the meals that exist among ids, in no particular order.
	// Unknown ids are silently skipped.
	GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Meal, error)
}
