package outboxrepo

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/core/ports"
	"fooddelivery/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// AddTransitions writes one order.changed event per transition to topic,
// keyed by order id so a partitioned consumer sees an order's events in order.
func (r *GormOutboxRepository) AddTransitions(ctx context.Context, topic string, transitions []order.Transition) error {
	if len(transitions) == 0 {
		return nil
	}
	if topic == "" {
		return errs.NewValueIsRequiredError("topic")
	}

	rows := make([]OutboxDTO, 0, len(transitions))
	now := time.Now().UTC()
	for _, t := range transitions {
		if err := t.Validate(); err != nil {
			return err
		}

		eventID := kernel.NewUUID()
		payload, err := newOrderChangedEvent(eventID.String(), t).marshal()
		if err != nil {
			return err
		}

		rows = append(rows, OutboxDTO{
			EventID:   eventID.Bytes(),
			Topic:     topic,
			Key:       t.OrderID().String(),
			Payload:   payload,
			CreatedAt: now,
		})
	}

	return r.db.WithContext(ctx).Create(&rows).Error
}

// FetchUnsent locks up to limit unsent rows with FOR UPDATE SKIP LOCKED so
// that concurrent relays never publish the same event.
func (r *GormOutboxRepository) FetchUnsent(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsOutOfRangeError("limit", limit, 1, "unbounded")
	}

	var dtos []OutboxDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("sent_at IS NULL").
		Order("id").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		msg, err := toMessage(dto)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

// MarkSent stamps sent_at on the given rows.
func (r *GormOutboxRepository) MarkSent(ctx context.Context, ids []int64, sentAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&OutboxDTO{}).
		Where("id IN ?", ids).
		Update("sent_at", sentAt.UTC()).Error
}
