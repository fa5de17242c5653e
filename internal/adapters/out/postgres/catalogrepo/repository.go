package catalogrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/catalog"
	"fooddelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormMealRepository implements MealRepository using GORM.
type GormMealRepository struct {
	db *gorm.DB
}

func NewGormMealRepository(db *gorm.DB) *GormMealRepository {
	return &GormMealRepository{db: db}
}

// GetByIDs loads the meals among ids that exist.
func (r *GormMealRepository) GetByIDs(ctx context.Context, ids []kernel.UUID) ([]*catalog.Meal, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return nil, err
		}
		raw = append(raw, id.Bytes())
	}

	var dtos []MealDTO
	if err := r.db.WithContext(ctx).Where("id IN ?", raw).Find(&dtos).Error; err != nil {
		return nil, err
	}

	meals := make([]*catalog.Meal, 0, len(dtos))
	for _, dto := range dtos {
		m, err := mealToDomain(dto)
		if err != nil {
			return nil, err
		}
		meals = append(meals, m)
	}
	return meals, nil
}
