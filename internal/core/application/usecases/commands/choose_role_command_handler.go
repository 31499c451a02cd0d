package commands

import "context"

// ChooseRoleCommandHandler assigns a role to a principal that has none yet.
// A second choice fails with AlreadyAssigned whatever role is requested.
type ChooseRoleCommandHandler struct {
	uowFactory RoleUoWFactory
}

func NewChooseRoleCommandHandler(uowFactory RoleUoWFactory) ChooseRoleCommandHandler {
	return ChooseRoleCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ChooseRoleCommandHandler) Handle(ctx context.Context, cmd ChooseRoleCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	roleRepo := uow.RoleRepository()
	assignment, err := roleRepo.Get(ctx, cmd.Actor())
	if err != nil {
		return err
	}

	if err = assignment.Choose(cmd.Role()); err != nil {
		return err
	}

	if err = roleRepo.Add(ctx, assignment); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
