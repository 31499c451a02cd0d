package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// ConfirmDeliveryCommandHandler completes a picked-up order. Completed orders are
// immutable.
type ConfirmDeliveryCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmDeliveryCommandHandler(uowFactory OrderUoWFactory) ConfirmDeliveryCommandHandler {
	return ConfirmDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ConfirmDeliveryCommandHandler) Handle(ctx context.Context, cmd ConfirmDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmDelivery(cmd.Actor(), cmd.EarTags())
	})
}
