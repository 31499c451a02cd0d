package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
)

// PlaceOrderCommandHandler creates an order in status PLACED against an existing
// herder. The herder's owner becomes the seller, the only principal allowed to
// confirm or reject the order.
type PlaceOrderCommandHandler struct {
	uowFactory PlaceOrderUoWFactory
}

func NewPlaceOrderCommandHandler(uowFactory PlaceOrderUoWFactory) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the new order. Ids come from the order sequence, so
// they increase by one per order placed, starting at order.FirstID.
func (h *PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	herder, err := uow.ParticipantRepository().GetHerder(ctx, cmd.HerderID())
	if err != nil {
		return 0, err
	}

	id, err := uow.SequenceRepository().Next(ctx, ports.SequenceOrder, order.FirstID)
	if err != nil {
		return 0, err
	}

	o, err := order.NewOrder(id, herder.ID(), herder.Owner(), cmd.Actor(), cmd.Quantity())
	if err != nil {
		return 0, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}
	return id, nil
}
