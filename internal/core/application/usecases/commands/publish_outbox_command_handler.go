package commands

import (
	"context"
	"time"

	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

// PublishOutboxCommandHandler relays committed order events to the event publisher.
// It reads a batch in one short transaction, publishes with no transaction open,
// then marks the batch processed in a second one. Messages are marked only after
// Publish succeeds, so delivery is at-least-once: a failed mark sends the batch again.
type PublishOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
	now        func() time.Time
}

func NewPublishOutboxCommandHandler(
	uowFactory OutboxUoWFactory,
	publisher ports.EventPublisher,
) PublishOutboxCommandHandler {
	return PublishOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
		now:        time.Now,
	}
}

// Handle returns the number of messages published.
func (h *PublishOutboxCommandHandler) Handle(ctx context.Context, cmd PublishOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	messages, err := h.fetch(ctx, cmd.BatchSize())
	if err != nil || len(messages) == 0 {
		return 0, err
	}

	if err = h.publisher.Publish(ctx, messages...); err != nil {
		return 0, err
	}

	ids := make([]uuid.UUID, 0, len(messages))
	for _, m := range messages {
		ids = append(ids, m.ID)
	}
	if err = h.markProcessed(ctx, ids); err != nil {
		return 0, err
	}
	return len(messages), nil
}

func (h *PublishOutboxCommandHandler) fetch(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	messages, err := uow.OutboxRepository().GetUnprocessed(ctx, limit)
	if err != nil {
		return nil, err
	}
	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}
	return messages, nil
}

func (h *PublishOutboxCommandHandler) markProcessed(ctx context.Context, ids []uuid.UUID) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.OutboxRepository().MarkProcessed(ctx, ids, h.now().UTC()); err != nil {
		return err
	}
	return uow.Commit(ctx)
}
