package commands

import (
	"context"

	"supplychain/internal/core/domain/model/order"
)

// applyToOrder loads the order, applies one transition and stores the result.
// The order's events are written to the outbox when the unit of work commits.
func applyToOrder(ctx context.Context, uowFactory OrderUoWFactory, orderID int64, apply func(*order.Order) error) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = apply(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
