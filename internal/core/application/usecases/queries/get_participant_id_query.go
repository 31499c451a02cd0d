package queries

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrGetParticipantIDQueryIsNotConstructed = errors.New(
	"GetParticipantIDQuery must be created via NewGetParticipantIDQuery constructor",
)

// GetParticipantIDQuery resolves the profile id a principal registered under kind.
type GetParticipantIDQuery struct {
	kind      role.Role
	principal kernel.Principal

	guard guard.ConstructorGuard
}

func NewGetParticipantIDQuery(kind role.Role, principal kernel.Principal) (GetParticipantIDQuery, error) {
	if !kind.IsRegistrable() {
		return GetParticipantIDQuery{}, errs.NewValueIsInvalidErrorWithCause(
			"kind", fmt.Errorf("%s has no profiles", kind))
	}
	if err := principal.Validate(); err != nil {
		return GetParticipantIDQuery{}, err
	}

	return GetParticipantIDQuery{
		kind:      kind,
		principal: principal,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (q GetParticipantIDQuery) Validate() error {
	return q.guard.Validate(ErrGetParticipantIDQueryIsNotConstructed)
}

func (q GetParticipantIDQuery) Kind() role.Role             { return q.kind }
func (q GetParticipantIDQuery) Principal() kernel.Principal { return q.principal }
