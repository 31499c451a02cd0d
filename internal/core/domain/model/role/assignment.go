package role

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// ErrAssignmentIsNotConstructed is returned when an Assignment was not created
// through NewAssignment or RestoreAssignment.
var ErrAssignmentIsNotConstructed = errors.New("Assignment must be created via NewAssignment constructor")

// Assignment binds a principal to its role. A fresh assignment has role None;
// Choose may succeed at most once over the lifetime of the principal.
type Assignment struct {
	principal kernel.Principal
	role      Role
	guard     guard.ConstructorGuard
}

// NewAssignment returns the unassigned state of a principal.
func NewAssignment(principal kernel.Principal) (*Assignment, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}
	return &Assignment{
		principal: principal,
		role:      None,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// RestoreAssignment rebuilds an assignment loaded from storage.
func RestoreAssignment(principal kernel.Principal, r Role) (*Assignment, error) {
	a, err := NewAssignment(principal)
	if err != nil {
		return nil, err
	}
	if err = r.Validate(); err != nil {
		return nil, err
	}
	a.role = r
	return a, nil
}

// Validate ensures the assignment was built by a constructor.
func (a *Assignment) Validate() error {
	if a == nil {
		return ErrAssignmentIsNotConstructed
	}
	return a.guard.Validate(ErrAssignmentIsNotConstructed)
}

func (a *Assignment) Principal() kernel.Principal {
	return a.principal
}

func (a *Assignment) Role() Role {
	return a.role
}

// IsAssigned reports whether a role has been chosen.
func (a *Assignment) IsAssigned() bool {
	return a.role != None
}

// Choose sets the role once. Any second call fails with AlreadyAssigned,
// whatever role is requested.
func (a *Assignment) Choose(r Role) error {
	if a.IsAssigned() {
		return errs.NewAlreadyAssignedError(a.principal.String(), a.role.String())
	}
	if !r.IsRegistrable() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be chosen", r))
	}
	a.role = r
	return nil
}

// Require fails with WrongRole unless the principal holds kind.
func (a *Assignment) Require(kind Role) error {
	if a.role != kind {
		return errs.NewWrongRoleError(a.principal.String(), a.role.String(), kind.String())
	}
	return nil
}
