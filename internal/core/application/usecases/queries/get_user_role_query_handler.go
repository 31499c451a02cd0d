package queries

import (
	"context"

	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
)

// GetUserRoleQueryHandler returns role.None for a principal that never chose a role.
//
// Example:
//
//	handler := NewGetUserRoleQueryHandler(readers.Roles())
//	query, _ := NewGetUserRoleQuery(principal)
//
//	r, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(r) // HERDER
type GetUserRoleQueryHandler struct {
	roles ports.RoleReader
}

func NewGetUserRoleQueryHandler(roles ports.RoleReader) GetUserRoleQueryHandler {
	return GetUserRoleQueryHandler{roles: roles}
}

func (h GetUserRoleQueryHandler) Handle(ctx context.Context, query GetUserRoleQuery) (role.Role, error) {
	if err := query.Validate(); err != nil {
		return role.None, err
	}

	assignment, err := h.roles.Get(ctx, query.Principal())
	if err != nil {
		return role.None, err
	}
	return assignment.Role(), nil
}
