package memory

import (
	"context"
	"slices"

	"supplychain/internal/adapters/out/outbox"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

// UnitOfWork is one serialized transaction against the store.
type UnitOfWork struct {
	store   *Store
	work    *state
	tracked []*order.Order
}

// Begin waits for the store's writer slot and snapshots the committed state.
// It gives up with the context's error if ctx is done first.
// Calling Begin on an active unit of work is a no-op.
func (u *UnitOfWork) Begin(ctx context.Context) error {
	if u.work != nil {
		return nil
	}
	if err := u.store.writer.acquire(ctx); err != nil {
		return err
	}
	u.work = u.store.state.Load().clone()
	return nil
}

// Commit appends the events of every tracked order to the outbox and publishes the
// working copy as the new committed state. The relay sees the events only once the
// state that produced them is visible.
func (u *UnitOfWork) Commit(ctx context.Context) error {
	if u.work == nil {
		return ErrNoTransaction
	}
	defer u.release()

	now := u.store.now()
	var messages []ports.OutboxMessage
	for _, aggregate := range u.tracked {
		drained, err := outbox.Drain(aggregate, now)
		if err != nil {
			return err
		}
		messages = append(messages, drained...)
	}

	log := u.store.outbox
	if err := log.slot.acquire(ctx); err != nil {
		return err
	}
	defer log.slot.release()

	log.messages = append(log.messages, messages...)
	u.store.state.Store(u.work)
	return nil
}

// Rollback discards the working copy.
func (u *UnitOfWork) Rollback(_ context.Context) error {
	if u.work == nil {
		return ErrNoTransaction
	}
	u.release()
	return nil
}

func (u *UnitOfWork) release() {
	u.work = nil
	u.tracked = nil
	u.store.writer.release()
}

func (u *UnitOfWork) track(aggregate *order.Order) {
	if !slices.Contains(u.tracked, aggregate) {
		u.tracked = append(u.tracked, aggregate)
	}
}

func (u *UnitOfWork) RoleRepository() ports.RoleRepository {
	return &roleRepository{st: u.work}
}

func (u *UnitOfWork) ParticipantRepository() ports.ParticipantRepository {
	return &participantRepository{st: u.work}
}

func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return &orderRepository{st: u.work, track: u.track}
}

func (u *UnitOfWork) SequenceRepository() ports.SequenceRepository {
	return &sequenceRepository{st: u.work}
}
