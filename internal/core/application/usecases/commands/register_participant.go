package commands

import (
	"context"
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"
)

// addProfile builds the profile for the allocated id and stores it.
type addProfile func(ctx context.Context, repo ports.ParticipantRepository, id int64) error

// register runs the registration steps shared by every profile kind: the actor must
// hold kind, must not own a profile of that kind yet, and gets the next id of sequence.
func register(
	ctx context.Context,
	uowFactory RegistrationUoWFactory,
	actor kernel.Principal,
	kind role.Role,
	sequence string,
	add addProfile,
) (int64, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	assignment, err := uow.RoleRepository().Get(ctx, actor)
	if err != nil {
		return 0, err
	}
	if err = assignment.Require(kind); err != nil {
		return 0, err
	}

	participantRepo := uow.ParticipantRepository()
	_, err = participantRepo.FindID(ctx, kind, actor)
	switch {
	case err == nil:
		return 0, errs.NewAlreadyRegisteredError(kind.String(), actor.String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return 0, err
	}

	id, err := uow.SequenceRepository().Next(ctx, sequence, participant.FirstID)
	if err != nil {
		return 0, err
	}

	if err = add(ctx, participantRepo, id); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}
