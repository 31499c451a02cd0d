package commands

import (
	"context"

	"supplychain/internal/core/domain/model/role"
)

// RequestTransportationCommandHandler moves a confirmed order to IN_TRANSIT with the
// transporter assigned. The order must exist and the transporter principal must own a
// registered transporter profile before the transition is attempted.
type RequestTransportationCommandHandler struct {
	uowFactory TransportationUoWFactory
}

func NewRequestTransportationCommandHandler(uowFactory TransportationUoWFactory) RequestTransportationCommandHandler {
	return RequestTransportationCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *RequestTransportationCommandHandler) Handle(ctx context.Context, cmd RequestTransportationCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, err = uow.ParticipantRepository().FindID(ctx, role.Transporter, cmd.Transporter()); err != nil {
		return err
	}

	if err = o.RequestTransportation(cmd.Actor(), cmd.Transporter(), cmd.Distance()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
