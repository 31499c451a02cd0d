package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrConfirmTransportationRequestCommandIsNotConstructed = errors.New(
	"ConfirmTransportationRequestCommand must be created via NewConfirmTransportationRequestCommand constructor",
)

// ConfirmTransportationRequestCommand is the assigned transporter accepting the job.
type ConfirmTransportationRequestCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Principal
	orderID int64

	guard guard.ConstructorGuard
}

func NewConfirmTransportationRequestCommand(
	actor kernel.Principal,
	orderID int64,
) (ConfirmTransportationRequestCommand, error) {
	if err := actor.Validate(); err != nil {
		return ConfirmTransportationRequestCommand{}, err
	}

	return ConfirmTransportationRequestCommand{
		actor:   actor,
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c ConfirmTransportationRequestCommand) Validate() error {
	return c.guard.Validate(ErrConfirmTransportationRequestCommandIsNotConstructed)
}

func (c ConfirmTransportationRequestCommand) Actor() kernel.Principal { return c.actor }
func (c ConfirmTransportationRequestCommand) OrderID() int64          { return c.orderID }
