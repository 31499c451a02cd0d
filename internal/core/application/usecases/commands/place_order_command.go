package commands

import (
	"errors"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand represents a buyer ordering livestock from a registered herder.
// Any principal may act as a buyer, whatever role it holds.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(buyer, herderID, 10)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory)
//	orderID, err := handler.Handle(ctx, cmd)
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Principal
	herderID int64
	quantity int64

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the buyer and requires a positive quantity.
// Whether the herder exists is checked by the handler.
func NewPlaceOrderCommand(actor kernel.Principal, herderID int64, quantity int64) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setQuantity(quantity),
	); err != nil {
		return PlaceOrderCommand{}, err
	}
	cmd.herderID = herderID

	return cmd, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Actor returns the buyer placing the order.
func (c PlaceOrderCommand) Actor() kernel.Principal {
	return c.actor
}

func (c PlaceOrderCommand) HerderID() int64 {
	return c.herderID
}

func (c PlaceOrderCommand) Quantity() int64 {
	return c.quantity
}

func (c *PlaceOrderCommand) setActor(actor kernel.Principal) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int64) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	c.quantity = quantity
	return nil
}
