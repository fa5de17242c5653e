// Package kafka publishes outbox messages to Kafka with segmentio/kafka-go.
package kafka

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"fooddelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

var ErrNoBrokers = errors.New("kafka: no brokers configured")

const eventIDHeader = "event-id"

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.MessagePublisher. Messages keep the topic
// stored with them and are keyed by order id, so the hash balancer keeps
// every change of one order on one partition and in commit order.
type Publisher struct {
	writer messageWriter
}

var _ ports.MessagePublisher = (*Publisher)(nil)

// NewPublisher accepts a comma separated broker list.
func NewPublisher(brokersCSV string) (*Publisher, error) {
	brokers := make([]string, 0)
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	if len(brokers) == 0 {
		return nil, ErrNoBrokers
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.Hash{},
			RequiredAcks: kafka.RequireOne,
		},
	}, nil
}

// Publish writes the batch synchronously. kafka-go reports partial
// failures as kafka.WriteErrors; the whole batch is then treated as
// failed and retried by the relay.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, msg := range messages {
		batch = append(batch, kafka.Message{
			Topic: msg.Topic,
			Key:   []byte(msg.Key),
			Value: msg.Payload,
			Time:  msg.CreatedAt.UTC(),
			Headers: []kafka.Header{
				{Key: eventIDHeader, Value: []byte(msg.EventID.String())},
			},
		})
	}

	if err := p.writer.WriteMessages(ctx, batch...); err != nil {
		return fmt.Errorf("publish %d outbox messages: %w", len(batch), err)
	}
	return nil
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
