package commands

import (
	"context"

	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
)

// RegisterSlaughterhouseCommandHandler stores the slaughterhouse profile of the
// acting principal, which must hold role Slaughterhouse.
type RegisterSlaughterhouseCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

func NewRegisterSlaughterhouseCommandHandler(
	uowFactory RegistrationUoWFactory,
) RegisterSlaughterhouseCommandHandler {
	return RegisterSlaughterhouseCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterSlaughterhouseCommandHandler) Handle(
	ctx context.Context,
	cmd RegisterSlaughterhouseCommand,
) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return register(ctx, h.uowFactory, cmd.Actor(), role.Slaughterhouse, ports.SequenceSlaughterhouse,
		func(ctx context.Context, repo ports.ParticipantRepository, id int64) error {
			s, err := participant.NewSlaughterhouse(id, cmd.Actor(), cmd.Location(), cmd.PricePerKg())
			if err != nil {
				return err
			}
			return repo.AddSlaughterhouse(ctx, s)
		})
}
