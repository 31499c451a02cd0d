// Package memory keeps the whole engine state in process memory. It is empty at
// start-up and lives until the process exits.
//
// Units of work are serialized by the store's writer slot: Begin blocks until the
// previous unit of work has committed or rolled back, or until its context is done,
// then works on a private copy of the state. Commit swaps the copy in; Rollback
// throws it away. Readers load the committed state without locking, so they never
// wait for an open unit of work.
//
// The outbox lives apart from the engine state. Commit appends to it; the relay
// takes short outbox units of work that never hold the writer slot.
package memory

import (
	"context"
	"errors"
	"maps"
	"sync/atomic"
	"time"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
)

// ErrNoTransaction is returned by Commit, Rollback and transactional repositories
// when Begin has not been called.
var ErrNoTransaction = errors.New("memory: no active transaction")

type state struct {
	roles           map[string]role.Role
	herders         map[int64]*participant.Herder
	slaughterhouses map[int64]*participant.Slaughterhouse
	transporters    map[int64]*participant.Transporter
	owners          map[role.Role]map[string]int64
	orders          map[int64]order.State
	sequences       map[string]int64
}

func newState() *state {
	return &state{
		roles:           make(map[string]role.Role),
		herders:         make(map[int64]*participant.Herder),
		slaughterhouses: make(map[int64]*participant.Slaughterhouse),
		transporters:    make(map[int64]*participant.Transporter),
		owners: map[role.Role]map[string]int64{
			role.Herder:         {},
			role.Slaughterhouse: {},
			role.Transporter:    {},
		},
		orders:    make(map[int64]order.State),
		sequences: make(map[string]int64),
	}
}

// clone copies every table. Stored values are never mutated in place, so a shallow
// copy of each map is enough.
func (s *state) clone() *state {
	owners := make(map[role.Role]map[string]int64, len(s.owners))
	for kind, ids := range s.owners {
		owners[kind] = maps.Clone(ids)
	}
	return &state{
		roles:           maps.Clone(s.roles),
		herders:         maps.Clone(s.herders),
		slaughterhouses: maps.Clone(s.slaughterhouses),
		transporters:    maps.Clone(s.transporters),
		owners:          owners,
		orders:          maps.Clone(s.orders),
		sequences:       maps.Clone(s.sequences),
	}
}

// slot is a one-token semaphore whose acquisition honors context cancellation.
type slot chan struct{}

func newSlot() slot { return make(slot, 1) }

func (s slot) acquire(ctx context.Context) error {
	select {
	case s <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s slot) release() { <-s }

// outboxLog holds the messages not yet published, oldest first.
type outboxLog struct {
	slot     slot
	messages []ports.OutboxMessage
}

// Store owns the committed state. It is the unit of work factory for the engine
// and for the relay, and the source of query readers.
type Store struct {
	writer slot
	state  atomic.Pointer[state]
	outbox *outboxLog
	now    func() time.Time
}

func NewStore() *Store {
	s := &Store{
		writer: newSlot(),
		outbox: &outboxLog{slot: newSlot()},
		now:    time.Now,
	}
	s.state.Store(newState())
	return s
}

// Create returns a fresh unit of work bound to the store.
func (s *Store) Create() ports.UnitOfWork {
	return &UnitOfWork{store: s}
}

// CreateOutbox returns a fresh relay unit of work bound to the store's outbox.
func (s *Store) CreateOutbox() ports.OutboxUnitOfWork {
	return &OutboxUnitOfWork{log: s.outbox}
}

func (s *Store) Roles() ports.RoleReader               { return roleReader{s} }
func (s *Store) Participants() ports.ParticipantReader { return participantReader{s} }
func (s *Store) Orders() ports.OrderReader             { return orderReader{s} }
func (s *Store) Sequences() ports.SequenceReader       { return sequenceReader{s} }

// read runs fn against the latest committed state. Committed states are never
// modified, so no lock is needed.
func read[T any](s *Store, fn func(st *state) (T, error)) (T, error) {
	return fn(s.state.Load())
}
