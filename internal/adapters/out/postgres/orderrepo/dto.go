// Package orderrepo persists the Order aggregate, its line items and its
// status history with GORM.
package orderrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the orders table. Exclusivity rules are carried by
// partial unique indexes created in Migrate, not by GORM tags.
type OrderDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ConsumerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	RestaurantID uuid.UUID       `gorm:"type:uuid;not null;index"`
	CourierID    *uuid.UUID      `gorm:"type:uuid;index"`
	Status       int             `gorm:"not null;index"`
	Total        decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Address      string          `gorm:"not null"`
	CreatedAt    time.Time       `gorm:"not null;index"`
	PickedAt     *time.Time
	Items        []LineItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// LineItemDTO represents one row of order_line_items. Position keeps the
// order in which the consumer listed the meals.
type LineItemDTO struct {
	ID       uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	MealID   uuid.UUID       `gorm:"type:uuid;not null"`
	Position int             `gorm:"not null"`
	Quantity int             `gorm:"not null"`
	SubTotal decimal.Decimal `gorm:"type:numeric(12,2);not null"`
}

func (LineItemDTO) TableName() string {
	return "order_line_items"
}

// StatusChangeDTO is an append-only audit row of order_status_history.
type StatusChangeDTO struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	OrderID    uuid.UUID `gorm:"type:uuid;not null;index"`
	FromStatus int       `gorm:"not null"`
	ToStatus   int       `gorm:"not null"`
	ActorID    uuid.UUID `gorm:"type:uuid;not null"`
	OccurredAt time.Time `gorm:"not null"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	var courierID *uuid.UUID
	if id := aggregate.Courier(); id != nil {
		raw := id.Bytes()
		courierID = &raw
	}

	items := make([]LineItemDTO, 0, len(aggregate.Items()))
	for i, item := range aggregate.Items() {
		items = append(items, LineItemDTO{
			ID:       item.ID().Bytes(),
			OrderID:  aggregate.ID().Bytes(),
			MealID:   item.MealID().Bytes(),
			Position: i,
			Quantity: item.Quantity(),
			SubTotal: item.SubTotal().Decimal(),
		})
	}

	return OrderDTO{
		ID:           aggregate.ID().Bytes(),
		ConsumerID:   aggregate.ConsumerID().Bytes(),
		RestaurantID: aggregate.RestaurantID().Bytes(),
		CourierID:    courierID,
		Status:       int(aggregate.Status()),
		Total:        aggregate.Total().Decimal(),
		Address:      aggregate.Address(),
		CreatedAt:    aggregate.CreatedAt(),
		PickedAt:     aggregate.PickedAt(),
		Items:        items,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	consumerID, err := kernel.UUIDFromBytes(dto.ConsumerID[:])
	if err != nil {
		return nil, err
	}
	restaurantID, err := kernel.UUIDFromBytes(dto.RestaurantID[:])
	if err != nil {
		return nil, err
	}

	var courierID *kernel.UUID
	if dto.CourierID != nil {
		cID, courierErr := kernel.UUIDFromBytes((*dto.CourierID)[:])
		if courierErr != nil {
			return nil, courierErr
		}
		courierID = &cID
	}

	total, err := kernel.NewMoney(dto.Total)
	if err != nil {
		return nil, err
	}

	items := make([]*order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := lineItemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id, consumerID, restaurantID, courierID,
		order.Status(dto.Status), dto.Address, items, total,
		dto.CreatedAt, dto.PickedAt,
	)
}

func lineItemToDomain(dto LineItemDTO) (*order.LineItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	mealID, err := kernel.UUIDFromBytes(dto.MealID[:])
	if err != nil {
		return nil, err
	}
	subTotal, err := kernel.NewMoney(dto.SubTotal)
	if err != nil {
		return nil, err
	}
	return order.NewLineItem(id, mealID, dto.Quantity, subTotal)
}

func statusChangeFromDomain(t order.Transition) StatusChangeDTO {
	return StatusChangeDTO{
		OrderID:    t.OrderID().Bytes(),
		FromStatus: int(t.From()),
		ToStatus:   int(t.To()),
		ActorID:    t.ActorID().Bytes(),
		OccurredAt: t.OccurredAt(),
	}
}
