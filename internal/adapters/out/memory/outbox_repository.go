package memory

import (
	"context"
	"slices"
	"time"

	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxUnitOfWork is one relay transaction over the store's outbox. It holds the
// outbox slot from Begin to Commit or Rollback and never touches the engine state.
type OutboxUnitOfWork struct {
	log     *outboxLog
	active  bool
	pending []ports.OutboxMessage
}

// Begin waits for the outbox slot, or for ctx to be done, and copies the pending
// messages. Calling Begin on an active unit of work is a no-op.
func (u *OutboxUnitOfWork) Begin(ctx context.Context) error {
	if u.active {
		return nil
	}
	if err := u.log.slot.acquire(ctx); err != nil {
		return err
	}
	u.active = true
	u.pending = slices.Clone(u.log.messages)
	return nil
}

func (u *OutboxUnitOfWork) Commit(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.log.messages = u.pending
	u.release()
	return nil
}

func (u *OutboxUnitOfWork) Rollback(_ context.Context) error {
	if !u.active {
		return ErrNoTransaction
	}
	u.release()
	return nil
}

func (u *OutboxUnitOfWork) release() {
	u.active = false
	u.pending = nil
	u.log.slot.release()
}

func (u *OutboxUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return &outboxRepository{uow: u}
}

type outboxRepository struct {
	uow *OutboxUnitOfWork
}

func (r *outboxRepository) Add(_ context.Context, messages ...ports.OutboxMessage) error {
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.pending = append(r.uow.pending, messages...)
	return nil
}

// GetUnprocessed returns messages in insertion order. A non-positive limit returns all.
func (r *outboxRepository) GetUnprocessed(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if !r.uow.active {
		return nil, ErrNoTransaction
	}
	pending := r.uow.pending
	if limit > 0 && len(pending) > limit {
		pending = pending[:limit]
	}
	return slices.Clone(pending), nil
}

// MarkProcessed drops the given messages. Nothing reads a processed message
// again, so the publish time is not kept.
func (r *outboxRepository) MarkProcessed(_ context.Context, ids []uuid.UUID, _ time.Time) error {
	if !r.uow.active {
		return ErrNoTransaction
	}
	r.uow.pending = slices.DeleteFunc(r.uow.pending, func(m ports.OutboxMessage) bool {
		return slices.Contains(ids, m.ID)
	})
	return nil
}
