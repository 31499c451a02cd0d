package queries

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrGetUserRoleQueryIsNotConstructed = errors.New(
	"GetUserRoleQuery must be created via NewGetUserRoleQuery constructor",
)

// GetUserRoleQuery asks for the role held by a principal.
type GetUserRoleQuery struct {
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewGetUserRoleQuery(principal kernel.Principal) (GetUserRoleQuery, error) {
	if err := principal.Validate(); err != nil {
		return GetUserRoleQuery{}, err
	}
	return GetUserRoleQuery{principal: principal, guard: guard.NewConstructorGuard()}, nil
}

func (q GetUserRoleQuery) Validate() error {
	return q.guard.Validate(ErrGetUserRoleQueryIsNotConstructed)
}

func (q GetUserRoleQuery) Principal() kernel.Principal {
	return q.principal
}
