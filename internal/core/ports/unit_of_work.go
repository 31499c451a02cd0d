package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// State-mutating units of work are serialized: Begin blocks until every earlier
// unit of work has committed or rolled back.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new transaction.
	Begin(ctx context.Context) error

	// Commit writes the events of every tracked order to the outbox and commits.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback discards the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// Repositories below are bound to the transaction started by Begin.
	RoleRepository() RoleRepository
	ParticipantRepository() ParticipantRepository
	OrderRepository() OrderRepository
	SequenceRepository() SequenceRepository
}

// OutboxUnitOfWorkFactory creates relay transactions. They touch the outbox only
// and never wait for the engine's write serialization.
type OutboxUnitOfWorkFactory interface {
	CreateOutbox() OutboxUnitOfWork
}

// OutboxUnitOfWork is a short transaction over the outbox alone.
type OutboxUnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OutboxRepository() OutboxRepository
}

// Readers exposes the latest committed state to queries without a unit of work.
type Readers interface {
	Roles() RoleReader
	Participants() ParticipantReader
	Orders() OrderReader
	Sequences() SequenceReader
}
