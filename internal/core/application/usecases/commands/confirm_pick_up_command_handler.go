package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type ConfirmPickUpCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmPickUpCommandHandler(uowFactory OrderUoWFactory) ConfirmPickUpCommandHandler {
	return ConfirmPickUpCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ConfirmPickUpCommandHandler) Handle(ctx context.Context, cmd ConfirmPickUpCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.ConfirmPickUp(cmd.Actor(), cmd.Quantity())
	})
}
