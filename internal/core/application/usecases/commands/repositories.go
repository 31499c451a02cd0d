// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// Every handler runs one unit of work: begin, check, persist, commit. A failed
// check rolls the whole unit back, so no operation leaves partial state behind.
package commands

import (
	"context"

	"supplychain/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles the transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	RoleRepoFactory interface {
		RoleRepository() ports.RoleRepository
	}

	ParticipantRepoFactory interface {
		ParticipantRepository() ports.ParticipantRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	SequenceRepoFactory interface {
		SequenceRepository() ports.SequenceRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// RoleUoW is used by ChooseRole.
	RoleUoW interface {
		TxManager
		RoleRepoFactory
	}

	RoleUoWFactory interface {
		Create() RoleUoW
	}

	// RegistrationUoW checks the caller's role, allocates a profile id and stores the profile.
	RegistrationUoW interface {
		TxManager
		RoleRepoFactory
		ParticipantRepoFactory
		SequenceRepoFactory
	}

	RegistrationUoWFactory interface {
		Create() RegistrationUoW
	}

	// PlaceOrderUoW resolves the herder, allocates the order id and stores the order.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   herder, err := uow.ParticipantRepository().GetHerder(ctx, herderID)
	//   id, err := uow.SequenceRepository().Next(ctx, ports.SequenceOrder, order.FirstID)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlaceOrderUoW interface {
		TxManager
		ParticipantRepoFactory
		OrderRepoFactory
		SequenceRepoFactory
	}

	PlaceOrderUoWFactory interface {
		Create() PlaceOrderUoW
	}

	// OrderUoW manages transactions for order-only transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// TransportationUoW reads the transporter registry while updating an order.
	TransportationUoW interface {
		TxManager
		OrderRepoFactory
		ParticipantRepoFactory
	}

	TransportationUoWFactory interface {
		Create() TransportationUoW
	}

	// OutboxUoW is a short relay transaction over the outbox alone. It must not
	// wait for the engine's write serialization.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
