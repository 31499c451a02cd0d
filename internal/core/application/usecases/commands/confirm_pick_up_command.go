package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrConfirmPickUpCommandIsNotConstructed = errors.New(
	"ConfirmPickUpCommand must be created via NewConfirmPickUpCommand constructor",
)

// ConfirmPickUpCommand records the quantity the transporter actually loaded.
type ConfirmPickUpCommand struct { //nolint:recvcheck //using for validation
	actor    kernel.Principal
	orderID  int64
	quantity int64

	guard guard.ConstructorGuard
}

func NewConfirmPickUpCommand(actor kernel.Principal, orderID int64, quantity int64) (ConfirmPickUpCommand, error) {
	if err := actor.Validate(); err != nil {
		return ConfirmPickUpCommand{}, err
	}

	return ConfirmPickUpCommand{
		actor:    actor,
		orderID:  orderID,
		quantity: quantity,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmPickUpCommand) Validate() error {
	return c.guard.Validate(ErrConfirmPickUpCommandIsNotConstructed)
}

func (c ConfirmPickUpCommand) Actor() kernel.Principal { return c.actor }
func (c ConfirmPickUpCommand) OrderID() int64          { return c.orderID }
func (c ConfirmPickUpCommand) Quantity() int64         { return c.quantity }
