package queries

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderSnapshot is the read model returned by the latest-order queries.
type OrderSnapshot struct {
	ID           kernel.UUID
	ConsumerID   kernel.UUID
	RestaurantID kernel.UUID
	CourierID    *kernel.UUID
	Status       order.Status
	Total        kernel.Money
	Address      string
	CreatedAt    time.Time
	PickedAt     *time.Time
	Items        []LineItemSnapshot
}

type LineItemSnapshot struct {
	MealID   kernel.UUID
	Quantity int
	SubTotal kernel.Money
}

// errNoSnapshot is returned by loadOrderSnapshot when the filter matched no row.
var errNoSnapshot = errors.New("no order matched")

// loadOrderSnapshot reads the first order selected by where/orderBy and its
// line items. The two statements run without a shared snapshot; line items
// are immutable once written, so they cannot disagree with the order row.
func loadOrderSnapshot(ctx context.Context, db *gorm.DB, where, orderBy string, args ...any) (*OrderSnapshot, error) {
	row := db.WithContext(ctx).Raw(`
		SELECT
			id,
			consumer_id,
			restaurant_id,
			courier_id,
			status,
			total,
			address,
			created_at,
			picked_at
		FROM orders
		WHERE `+where+`
		ORDER BY `+orderBy+`
		LIMIT 1`, args...).Row()

	var (
		id, consumerID, restaurantID uuid.UUID
		courierID                    uuid.NullUUID
		status                       int
		total                        decimal.Decimal
		pickedAt                     sql.NullTime
		snapshot                     OrderSnapshot
	)
	err := row.Scan(&id, &consumerID, &restaurantID, &courierID, &status, &total,
		&snapshot.Address, &snapshot.CreatedAt, &pickedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("load order snapshot: %w", err)
	}

	if snapshot.ID, err = toUUID(id); err != nil {
		return nil, err
	}
	if snapshot.ConsumerID, err = toUUID(consumerID); err != nil {
		return nil, err
	}
	if snapshot.RestaurantID, err = toUUID(restaurantID); err != nil {
		return nil, err
	}
	if snapshot.CourierID, err = toNullableUUID(courierID); err != nil {
		return nil, err
	}
	snapshot.Status = order.Status(status)
	if err = snapshot.Status.Validate(); err != nil {
		return nil, err
	}
	if snapshot.Total, err = toMoney(total); err != nil {
		return nil, err
	}
	if pickedAt.Valid {
		snapshot.PickedAt = &pickedAt.Time
	}

	if snapshot.Items, err = loadLineItems(ctx, db, id); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func loadLineItems(ctx context.Context, db *gorm.DB, orderID uuid.UUID) ([]LineItemSnapshot, error) {
	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			meal_id,
			quantity,
			sub_total
		FROM order_line_items
		WHERE order_id = ?
		ORDER BY position`, orderID).Rows()
	if err != nil {
		return nil, fmt.Errorf("load line items: %w", err)
	}
	defer rows.Close()

	items := make([]LineItemSnapshot, 0)
	for rows.Next() {
		var (
			item     LineItemSnapshot
			mealID   uuid.UUID
			subTotal decimal.Decimal
		)
		if err = rows.Scan(&mealID, &item.Quantity, &subTotal); err != nil {
			return nil, err
		}
		if item.MealID, err = toUUID(mealID); err != nil {
			return nil, err
		}
		if item.SubTotal, err = toMoney(subTotal); err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, rows.Err()
}
