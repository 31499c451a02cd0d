package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// OutboxMessage is a domain event persisted in the same transaction as the state
// change that produced it, waiting to be published.
type OutboxMessage struct {
	ID          uuid.UUID
	EventType   string
	OrderID     int64
	Payload     []byte
	OccurredAt  time.Time
	ProcessedAt *time.Time
}

// OutboxRepository stores outbox messages.
type OutboxRepository interface {
	// Add appends messages to the outbox.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnprocessed returns up to limit unpublished messages, oldest first.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed stamps the given messages as published.
	MarkProcessed(ctx context.Context, ids []uuid.UUID, at time.Time) error
}

// EventPublisher ships outbox messages to subscribers outside the process.
type EventPublisher interface {
	Publish(ctx context.Context, messages ...OutboxMessage) error
}
