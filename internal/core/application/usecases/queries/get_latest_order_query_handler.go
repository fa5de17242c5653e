package queries

import (
	"context"
	"errors"

	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetLatestConsumerOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetLatestConsumerOrderQueryHandler(db *gorm.DB) GetLatestConsumerOrderQueryHandler {
	return GetLatestConsumerOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the consumer never ordered.
func (h GetLatestConsumerOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestConsumerOrderQuery,
) (*OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := loadOrderSnapshot(ctx, h.db,
		"consumer_id = ?", "created_at DESC, id DESC",
		query.ConsumerID().Bytes())
	if errors.Is(err, errNoSnapshot) {
		return nil, errs.NewObjectNotFoundError("order", "latest for consumer "+query.ConsumerID().String())
	}
	return snapshot, err
}

type GetLatestCourierOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetLatestCourierOrderQueryHandler(db *gorm.DB) GetLatestCourierOrderQueryHandler {
	return GetLatestCourierOrderQueryHandler{db: db}
}

// Handle orders by pick-up time, so a delivered order stays the latest
// until the courier claims another one.
func (h GetLatestCourierOrderQueryHandler) Handle(
	ctx context.Context,
	query GetLatestCourierOrderQuery,
) (*OrderSnapshot, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := loadOrderSnapshot(ctx, h.db,
		"courier_id = ? AND picked_at IS NOT NULL", "picked_at DESC, id DESC",
		query.CourierID().Bytes())
	if errors.Is(err, errNoSnapshot) {
		return nil, errs.NewObjectNotFoundError("order", "latest for courier "+query.CourierID().String())
	}
	return snapshot, err
}
