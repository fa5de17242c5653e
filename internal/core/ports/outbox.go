package ports

import (
	"context"
	"time"

	"fooddelivery/internal/core/domain/model/kernel"
)

// OutboxMessage is an event written in a business transaction and relayed
// to the broker afterwards.
type OutboxMessage struct {
	ID        int64
	EventID   kernel.UUID
	Topic     string
	Key       string
	Payload   []byte
	CreatedAt time.Time
}

// OutboxRepository reads and acknowledges pending outbox messages.
type OutboxRepository interface {
	// FetchUnsent locks up to limit unsent messages, oldest first. Rows locked
	// by another relay are skipped.
	FetchUnsent(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkSent stamps the given messages as delivered to the broker.
	MarkSent(ctx context.Context, ids []int64, sentAt time.Time) error
}

// MessagePublisher delivers outbox messages to the broker.
type MessagePublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
