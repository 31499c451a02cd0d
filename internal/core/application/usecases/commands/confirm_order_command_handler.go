package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

type ConfirmOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewConfirmOrderCommandHandler(uowFactory OrderUoWFactory) ConfirmOrderCommandHandler {
	return ConfirmOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *ConfirmOrderCommandHandler) Handle(ctx context.Context, cmd ConfirmOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Confirm(cmd.Actor(), cmd.Accept())
	})
}
