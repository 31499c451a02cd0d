package memory

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/errs"
)

type roleRepository struct {
	st *state
}

func (r *roleRepository) Get(_ context.Context, principal kernel.Principal) (*role.Assignment, error) {
	if r.st == nil {
		return nil, ErrNoTransaction
	}
	return getRole(r.st, principal)
}

func (r *roleRepository) Add(_ context.Context, assignment *role.Assignment) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := assignment.Validate(); err != nil {
		return err
	}
	if !assignment.IsAssigned() {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be stored", assignment.Role()))
	}

	key := assignment.Principal().String()
	if current, ok := r.st.roles[key]; ok {
		return errs.NewAlreadyAssignedError(key, current.String())
	}
	r.st.roles[key] = assignment.Role()
	return nil
}

func getRole(st *state, principal kernel.Principal) (*role.Assignment, error) {
	if err := principal.Validate(); err != nil {
		return nil, err
	}
	r, ok := st.roles[principal.String()]
	if !ok {
		return role.NewAssignment(principal)
	}
	return role.RestoreAssignment(principal, r)
}

type roleReader struct{ s *Store }

func (r roleReader) Get(_ context.Context, principal kernel.Principal) (*role.Assignment, error) {
	return read(r.s, func(st *state) (*role.Assignment, error) { return getRole(st, principal) })
}
