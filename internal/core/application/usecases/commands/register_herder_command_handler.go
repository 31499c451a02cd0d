package commands

import (
	"context"

	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
)

// RegisterHerderCommandHandler stores the herder profile of the acting principal
// and returns the id allocated to it.
//
// Example:
//
//	cmd, _ := NewRegisterHerderCommand(actor, "Location A", 100, 10, participant.AimagStats{})
//	id, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrWrongRole) {
//	    // the actor chose another role, or none
//	}
type RegisterHerderCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

func NewRegisterHerderCommandHandler(uowFactory RegistrationUoWFactory) RegisterHerderCommandHandler {
	return RegisterHerderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterHerderCommandHandler) Handle(ctx context.Context, cmd RegisterHerderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return register(ctx, h.uowFactory, cmd.Actor(), role.Herder, ports.SequenceHerder,
		func(ctx context.Context, repo ports.ParticipantRepository, id int64) error {
			herder, err := participant.NewHerder(
				id, cmd.Actor(), cmd.Location(), cmd.TotalLivestock(), cmd.PricePerKg(), cmd.Aimag())
			if err != nil {
				return err
			}
			return repo.AddHerder(ctx, herder)
		})
}
