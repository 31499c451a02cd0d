package commands

import (
	"errors"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrConfirmDeliveryCommandIsNotConstructed = errors.New(
	"ConfirmDeliveryCommand must be created via NewConfirmDeliveryCommand constructor",
)

// ConfirmDeliveryCommand is the buyer closing the order with the ear tags of the
// livestock units received.
type ConfirmDeliveryCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Principal
	orderID int64
	earTags []int64

	guard guard.ConstructorGuard
}

func NewConfirmDeliveryCommand(actor kernel.Principal, orderID int64, earTags []int64) (ConfirmDeliveryCommand, error) {
	if err := actor.Validate(); err != nil {
		return ConfirmDeliveryCommand{}, err
	}

	return ConfirmDeliveryCommand{
		actor:   actor,
		orderID: orderID,
		earTags: slices.Clone(earTags),
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrConfirmDeliveryCommandIsNotConstructed)
}

func (c ConfirmDeliveryCommand) Actor() kernel.Principal { return c.actor }
func (c ConfirmDeliveryCommand) OrderID() int64          { return c.orderID }
func (c ConfirmDeliveryCommand) EarTags() []int64        { return slices.Clone(c.earTags) }
