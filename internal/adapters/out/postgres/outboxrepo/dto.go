// Package outboxrepo stores order events in the transactional outbox and
// hands them to the relay.
package outboxrepo

import (
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxDTO is one pending or sent event. SentAt stays NULL until the relay
// has published the event.
type OutboxDTO struct {
	ID        int64      `gorm:"primaryKey;autoIncrement"`
	EventID   uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex"`
	Topic     string     `gorm:"not null"`
	Key       string     `gorm:"not null"`
	Payload   string     `gorm:"type:jsonb;not null"`
	CreatedAt time.Time  `gorm:"not null"`
	SentAt    *time.Time `gorm:"index"`
}

func (OutboxDTO) TableName() string {
	return "outbox"
}

func toMessage(dto OutboxDTO) (ports.OutboxMessage, error) {
	eventID, err := kernel.UUIDFromBytes(dto.EventID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:        dto.ID,
		EventID:   eventID,
		Topic:     dto.Topic,
		Key:       dto.Key,
		Payload:   []byte(dto.Payload),
		CreatedAt: dto.CreatedAt,
	}, nil
}
