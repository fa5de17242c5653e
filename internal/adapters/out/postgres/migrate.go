package postgres

import (
	"context"

	"fooddelivery/internal/adapters/out/postgres/catalogrepo"
	"fooddelivery/internal/adapters/out/postgres/orderrepo"
	"fooddelivery/internal/adapters/out/postgres/outboxrepo"
	"fooddelivery/internal/adapters/out/postgres/tokenrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table and the partial unique indexes the
// dispatch rules depend on.
func Migrate(ctx context.Context, db *gorm.DB) error {
	conn := db.WithContext(ctx)

	if err := conn.AutoMigrate(
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MealDTO{},
		&orderrepo.OrderDTO{},
		&orderrepo.LineItemDTO{},
		&orderrepo.StatusChangeDTO{},
		&outboxrepo.OutboxDTO{},
		&tokenrepo.AccessTokenDTO{},
	); err != nil {
		return err
	}

	for _, stmt := range orderrepo.IndexStatements() {
		if err := conn.Exec(stmt).Error; err != nil {
			return err
		}
	}

	return nil
}
