// Package eventlog publishes outbox messages to the structured log. It stands in for
// a broker in development and single-node deployments.
package eventlog

import (
	"context"
	"encoding/json"
	"log/slog"

	"supplychain/internal/core/ports"
)

type Publisher struct {
	logger *slog.Logger
}

func NewPublisher(logger *slog.Logger) *Publisher {
	return &Publisher{logger: logger.With("component", "eventlog")}
}

// Publish logs one record per message and never fails.
func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	for _, m := range messages {
		p.logger.InfoContext(ctx, "order event",
			"event_id", m.ID.String(),
			"event_type", m.EventType,
			"order_id", m.OrderID,
			"occurred_at", m.OccurredAt,
			"envelope", json.RawMessage(m.Payload),
		)
	}
	return nil
}
