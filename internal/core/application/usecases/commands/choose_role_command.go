package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/guard"
)

var ErrChooseRoleCommandIsNotConstructed = errors.New(
	"ChooseRoleCommand must be created via NewChooseRoleCommand constructor",
)

// ChooseRoleCommand asks to bind the acting principal to a role, once and for good.
//
// Example:
//
//	cmd, err := NewChooseRoleCommand(actor, role.Herder)
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type ChooseRoleCommand struct { //nolint:recvcheck //using for validation
	actor kernel.Principal
	role  role.Role

	guard guard.ConstructorGuard
}

// NewChooseRoleCommand validates the actor and the role value. Whether the role may
// be chosen at all is decided by the role assignment.
func NewChooseRoleCommand(actor kernel.Principal, r role.Role) (ChooseRoleCommand, error) {
	if err := errors.Join(actor.Validate(), r.Validate()); err != nil {
		return ChooseRoleCommand{}, err
	}

	return ChooseRoleCommand{
		actor: actor,
		role:  r,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c ChooseRoleCommand) Validate() error {
	return c.guard.Validate(ErrChooseRoleCommandIsNotConstructed)
}

func (c ChooseRoleCommand) Actor() kernel.Principal {
	return c.actor
}

func (c ChooseRoleCommand) Role() role.Role {
	return c.role
}
