package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// ConfirmTransportationRequestCommandHandler moves an in-transit order from phase
// ASSIGNED to ACCEPTED. The HTTP surface also exposes it as "confirm delivery request".
type ConfirmTransportationRequestCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmTransportationRequestCommandHandler(
	uowFactory OrderUoWFactory,
) ConfirmTransportationRequestCommandHandler {
	return ConfirmTransportationRequestCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ConfirmTransportationRequestCommandHandler) Handle(
	ctx context.Context,
	cmd ConfirmTransportationRequestCommand,
) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.AcceptTransportation(cmd.Actor())
	})
}
