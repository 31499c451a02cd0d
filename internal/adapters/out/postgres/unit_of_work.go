// Package postgres stores the engine state in PostgreSQL through GORM.
//
// A GormUnitOfWork wraps one database transaction. Begin takes a transaction-scoped
// advisory lock, so state-mutating units of work run one at a time across every
// process sharing the database; the lock is released by Commit or Rollback. Orders
// added or updated through the unit of work are tracked, and Commit writes their
// pending events to the outbox table inside the same transaction.
//
// Usage:
//
//	factory := postgres.NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	o, err := uow.OrderRepository().Get(ctx, id)
//	...
//	return uow.Commit(ctx)
//
// Repositories taken before Begin run directly against the connection pool.
//
// The relay uses a GormOutboxUnitOfWork from CreateOutbox instead. It never takes
// the advisory lock, so publishing does not hold up the engine.
package postgres

import (
	"context"
	"slices"
	"time"

	"supplychain/internal/adapters/out/outbox"
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/adapters/out/postgres/participantrepo"
	"supplychain/internal/adapters/out/postgres/rolerepo"
	"supplychain/internal/adapters/out/postgres/sequencerepo"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

// writeLockKey is the advisory lock every unit of work holds for its lifetime.
const writeLockKey int64 = 0x5C_0A_1E

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db  *gorm.DB
	now func() time.Time
}

func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, now: time.Now}
}

// Create returns a unit of work with no transaction yet.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db, now: f.now}
}

// GormUnitOfWork coordinates one database transaction and the orders it touches.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	now     func() time.Time
	tracked []*order.Order
}

// Begin opens a transaction and waits for the write lock.
// Calling Begin on an active unit of work is a no-op.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	if err := tx.Exec("SELECT pg_advisory_xact_lock(?)", writeLockKey).Error; err != nil {
		tx.Rollback()
		return err
	}

	uow.tx = tx
	return nil
}

// Commit writes the events of tracked orders to the outbox and commits.
// On failure the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	tx := uow.tx
	uow.tx = nil
	defer func() { uow.tracked = nil }()

	if err := uow.flushOutbox(ctx, tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit().Error
}

func (uow *GormUnitOfWork) flushOutbox(ctx context.Context, tx *gorm.DB) error {
	now := uow.now()
	messages := make([]ports.OutboxMessage, 0)
	for _, aggregate := range uow.tracked {
		drained, err := outbox.Drain(aggregate, now)
		if err != nil {
			return err
		}
		messages = append(messages, drained...)
	}
	return outboxrepo.NewGormOutboxRepository(tx).Add(ctx, messages...)
}

// Rollback discards the transaction and the tracked orders.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = nil
	return err
}

// TrackAggregate registers an order whose events must reach the outbox on commit.
func (uow *GormUnitOfWork) TrackAggregate(aggregate *order.Order) {
	if !slices.Contains(uow.tracked, aggregate) {
		uow.tracked = append(uow.tracked, aggregate)
	}
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) RoleRepository() ports.RoleRepository {
	return rolerepo.NewGormRoleRepository(uow.conn())
}

func (uow *GormUnitOfWork) ParticipantRepository() ports.ParticipantRepository {
	return participantrepo.NewGormParticipantRepository(uow.conn())
}

// OrderRepository locks the orders it reads while a transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	repo := orderrepo.NewGormOrderRepository(uow.conn(), uow)
	if uow.tx != nil {
		return repo.ForUpdate()
	}
	return repo
}

func (uow *GormUnitOfWork) SequenceRepository() ports.SequenceRepository {
	return sequencerepo.NewGormSequenceRepository(uow.conn())
}
