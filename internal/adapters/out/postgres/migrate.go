package postgres

import (
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/adapters/out/postgres/participantrepo"
	"supplychain/internal/adapters/out/postgres/rolerepo"
	"supplychain/internal/adapters/out/postgres/sequencerepo"

	"gorm.io/gorm"
)

// Models lists every table the adapter owns.
func Models() []any {
	return []any{
		&rolerepo.RoleDTO{},
		&participantrepo.HerderDTO{},
		&participantrepo.SlaughterhouseDTO{},
		&participantrepo.TransporterDTO{},
		&orderrepo.OrderDTO{},
		&sequencerepo.SequenceDTO{},
		&outboxrepo.OutboxMessageDTO{},
	}
}

// AutoMigrate creates or updates the schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}
