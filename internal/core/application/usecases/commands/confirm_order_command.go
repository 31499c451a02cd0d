package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrConfirmOrderCommandIsNotConstructed = errors.New(
	"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
)

// ConfirmOrderCommand is the herder's answer to a placed order: accept moves it to
// CONFIRMED, anything else rejects it for good.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Principal
	orderID int64
	accept  bool

	guard guard.ConstructorGuard
}

func NewConfirmOrderCommand(actor kernel.Principal, orderID int64, accept bool) (ConfirmOrderCommand, error) {
	if err := actor.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		actor:   actor,
		orderID: orderID,
		accept:  accept,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

func (c ConfirmOrderCommand) Actor() kernel.Principal { return c.actor }
func (c ConfirmOrderCommand) OrderID() int64          { return c.orderID }
func (c ConfirmOrderCommand) Accept() bool            { return c.accept }
