package outboxrepo

import (
	"encoding/json"
	"time"

	"fooddelivery/internal/core/domain/model/order"
)

// OrderChangedEventType is the type field of every order event.
const OrderChangedEventType = "order.changed"

// OrderChangedEvent is the JSON payload published for each order transition.
// From is empty for the creation event.
type OrderChangedEvent struct {
	EventID    string    `json:"event_id"`
	Type       string    `json:"type"`
	OrderID    string    `json:"order_id"`
	From       string    `json:"from,omitempty"`
	To         string    `json:"to"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

func newOrderChangedEvent(eventID string, t order.Transition) OrderChangedEvent {
	event := OrderChangedEvent{
		EventID:    eventID,
		Type:       OrderChangedEventType,
		OrderID:    t.OrderID().String(),
		To:         t.To().String(),
		ActorID:    t.ActorID().String(),
		OccurredAt: t.OccurredAt(),
	}
	if t.From() != order.Unknown {
		event.From = t.From().String()
	}
	return event
}

func (e OrderChangedEvent) marshal() (string, error) {
	data, err := json.Marshal(e)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
