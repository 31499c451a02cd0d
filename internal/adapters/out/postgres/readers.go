package postgres

import (
	"supplychain/internal/adapters/out/postgres/orderrepo"
	"supplychain/internal/adapters/out/postgres/participantrepo"
	"supplychain/internal/adapters/out/postgres/rolerepo"
	"supplychain/internal/adapters/out/postgres/sequencerepo"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

// Readers serves queries from committed rows without taking the write lock.
type Readers struct {
	db *gorm.DB
}

func NewReaders(db *gorm.DB) *Readers {
	return &Readers{db: db}
}

func (r *Readers) Roles() ports.RoleReader {
	return rolerepo.NewGormRoleRepository(r.db)
}

func (r *Readers) Participants() ports.ParticipantReader {
	return participantrepo.NewGormParticipantRepository(r.db)
}

func (r *Readers) Orders() ports.OrderReader {
	return orderrepo.NewGormOrderRepository(r.db, nil)
}

func (r *Readers) Sequences() ports.SequenceReader {
	return sequencerepo.NewGormSequenceRepository(r.db)
}
