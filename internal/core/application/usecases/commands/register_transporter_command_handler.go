package commands

import (
	"context"

	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
)

// RegisterTransporterCommandHandler stores the transporter profile of the acting
// principal, which must hold role Transporter.
type RegisterTransporterCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

func NewRegisterTransporterCommandHandler(uowFactory RegistrationUoWFactory) RegisterTransporterCommandHandler {
	return RegisterTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RegisterTransporterCommandHandler) Handle(ctx context.Context, cmd RegisterTransporterCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	return register(ctx, h.uowFactory, cmd.Actor(), role.Transporter, ports.SequenceTransporter,
		func(ctx context.Context, repo ports.ParticipantRepository, id int64) error {
			t, err := participant.NewTransporter(id, cmd.Actor(), cmd.Location(), cmd.TruckInfo(), cmd.PricePerKm())
			if err != nil {
				return err
			}
			return repo.AddTransporter(ctx, t)
		})
}
