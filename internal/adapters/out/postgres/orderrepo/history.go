package orderrepo

import (
	"context"

	"fooddelivery/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistory appends rows to order_status_history.
type GormStatusHistory struct {
	db *gorm.DB
}

func NewGormStatusHistory(db *gorm.DB) *GormStatusHistory {
	return &GormStatusHistory{db: db}
}

// Append writes one audit row per transition.
func (h *GormStatusHistory) Append(ctx context.Context, transitions []order.Transition) error {
	if len(transitions) == 0 {
		return nil
	}

	rows := make([]StatusChangeDTO, 0, len(transitions))
	for _, t := range transitions {
		if err := t.Validate(); err != nil {
			return err
		}
		rows = append(rows, statusChangeFromDomain(t))
	}

	return h.db.WithContext(ctx).Create(&rows).Error
}
