// Package outbox turns the domain events recorded on order aggregates into outbox
// messages. Both storage backends call Drain while committing a unit of work, so the
// messages land in the same transaction as the state change.
package outbox

import (
	"encoding/json"
	"time"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

const (
	EventVersion = 1
	Producer     = "supplychain-api"
)

// Envelope is the JSON document stored as the message payload and shipped to the broker.
type Envelope struct {
	EventID       string          `json:"event_id"`
	EventType     string          `json:"event_type"`
	EventVersion  int             `json:"event_version"`
	OccurredAt    time.Time       `json:"occurred_at"`
	Producer      string          `json:"producer"`
	CorrelationID string          `json:"correlation_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
}

// OrderPayload is the order snapshot after the transition plus the principal that caused it.
type OrderPayload struct {
	OrderID          int64   `json:"order_id"`
	HerderID         int64   `json:"herder_id"`
	Seller           string  `json:"seller"`
	Buyer            string  `json:"buyer"`
	Actor            string  `json:"actor"`
	Quantity         int64   `json:"quantity"`
	Status           string  `json:"status"`
	Phase            string  `json:"phase,omitempty"`
	Transporter      string  `json:"transporter,omitempty"`
	Distance         int64   `json:"distance,omitempty"`
	PickedUpQuantity int64   `json:"picked_up_quantity,omitempty"`
	EarTagNumbers    []int64 `json:"ear_tag_numbers,omitempty"`
}

// Drain pulls the pending events off the aggregate and wraps each one in an envelope.
func Drain(aggregate *order.Order, now time.Time) ([]ports.OutboxMessage, error) {
	events := aggregate.PullEvents()
	if len(events) == 0 {
		return nil, nil
	}

	state := aggregate.State()
	messages := make([]ports.OutboxMessage, 0, len(events))
	for _, event := range events {
		msg, err := newMessage(event, state, now)
		if err != nil {
			return nil, err
		}
		messages = append(messages, msg)
	}
	return messages, nil
}

func newMessage(event order.Event, state order.State, now time.Time) (ports.OutboxMessage, error) {
	payload := OrderPayload{
		OrderID:  event.OrderID,
		HerderID: state.HerderID,
		Seller:   state.Seller.String(),
		Buyer:    state.Buyer.String(),
		Actor:    event.Actor.String(),
		Quantity: state.Quantity,
		Status:   event.Status.String(),
	}
	if event.Phase != order.NoPhase {
		payload.Phase = event.Phase.String()
	}
	if state.Transporter != nil && event.Status != order.Placed && event.Status != order.Confirmed {
		payload.Transporter = state.Transporter.String()
		payload.Distance = state.Distance
	}
	if event.Type == order.EventPickUpConfirmed || event.Type == order.EventDeliveryConfirmed {
		payload.PickedUpQuantity = state.PickedUpQuantity
	}
	if event.Type == order.EventDeliveryConfirmed {
		payload.EarTagNumbers = state.EarTags
	}

	rawPayload, err := json.Marshal(payload)
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	id := uuid.New()
	body, err := json.Marshal(Envelope{
		EventID:       id.String(),
		EventType:     string(event.Type),
		EventVersion:  EventVersion,
		OccurredAt:    now.UTC(),
		Producer:      Producer,
		CorrelationID: state.Buyer.String(),
		Payload:       rawPayload,
	})
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:         id,
		EventType:  string(event.Type),
		OrderID:    event.OrderID,
		Payload:    body,
		OccurredAt: now.UTC(),
	}, nil
}
