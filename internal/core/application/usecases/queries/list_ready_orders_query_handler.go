package queries

import (
	"context"
	"fmt"

	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ListReadyOrdersQueryHandler reads READY orders without a courier,
// newest first.
type ListReadyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListReadyOrdersQueryHandler(db *gorm.DB) ListReadyOrdersQueryHandler {
	return ListReadyOrdersQueryHandler{db: db}
}

func (h ListReadyOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListReadyOrdersQuery,
) ([]ReadyOrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			restaurant_id,
			total,
			address,
			created_at
		FROM orders
		WHERE status = ? AND courier_id IS NULL`
	args := []any{int(order.Ready)}
	if restaurantID := query.RestaurantID(); restaurantID != nil {
		sql += ` AND restaurant_id = ?`
		args = append(args, restaurantID.Bytes())
	}
	sql += ` ORDER BY created_at DESC, id DESC`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, fmt.Errorf("list ready orders: %w", err)
	}
	defer rows.Close()

	result := make([]ReadyOrderResponse, 0)
	for rows.Next() {
		var (
			row          ReadyOrderResponse
			id           uuid.UUID
			restaurantID uuid.UUID
			total        decimal.Decimal
		)
		if err = rows.Scan(&id, &restaurantID, &total, &row.Address, &row.CreatedAt); err != nil {
			return nil, err
		}

		if row.ID, err = toUUID(id); err != nil {
			return nil, err
		}
		if row.RestaurantID, err = toUUID(restaurantID); err != nil {
			return nil, err
		}
		if row.Total, err = toMoney(total); err != nil {
			return nil, err
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}
