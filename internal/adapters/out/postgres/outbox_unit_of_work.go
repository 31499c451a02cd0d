package postgres

import (
	"context"

	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

// CreateOutbox returns a relay unit of work with no transaction yet.
func (f *GormUnitOfWorkFactory) CreateOutbox() ports.OutboxUnitOfWork {
	return &GormOutboxUnitOfWork{db: f.db}
}

// GormOutboxUnitOfWork is a plain transaction over the outbox table. Rows read
// through it stay locked until Commit or Rollback; concurrent relays skip them.
type GormOutboxUnitOfWork struct {
	db *gorm.DB
	tx *gorm.DB
}

// Begin opens a transaction. Calling Begin on an active unit of work is a no-op.
func (uow *GormOutboxUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	uow.tx = tx
	return nil
}

func (uow *GormOutboxUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	tx := uow.tx
	uow.tx = nil
	return tx.Commit().Error
}

func (uow *GormOutboxUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}
	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormOutboxUnitOfWork) OutboxRepository() ports.OutboxRepository {
	if uow.tx != nil {
		return outboxrepo.NewGormOutboxRepository(uow.tx)
	}
	return outboxrepo.NewGormOutboxRepository(uow.db)
}
