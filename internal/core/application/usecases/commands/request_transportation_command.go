package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRequestTransportationCommandIsNotConstructed = errors.New(
	"RequestTransportationCommand must be created via NewRequestTransportationCommand constructor",
)

// RequestTransportationCommand is the buyer assigning a registered transporter to a
// confirmed order. Distance is validated by the order so that state and actor
// errors take precedence over argument errors.
type RequestTransportationCommand struct { //nolint:recvcheck //using for validation
	actor       kernel.Principal
	orderID     int64
	transporter kernel.Principal
	distance    int64

	guard guard.ConstructorGuard
}

func NewRequestTransportationCommand(
	actor kernel.Principal,
	orderID int64,
	transporter kernel.Principal,
	distance int64,
) (RequestTransportationCommand, error) {
	if err := errors.Join(actor.Validate(), transporter.Validate()); err != nil {
		return RequestTransportationCommand{}, err
	}

	return RequestTransportationCommand{
		actor:       actor,
		orderID:     orderID,
		transporter: transporter,
		distance:    distance,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c RequestTransportationCommand) Validate() error {
	return c.guard.Validate(ErrRequestTransportationCommandIsNotConstructed)
}

func (c RequestTransportationCommand) Actor() kernel.Principal       { return c.actor }
func (c RequestTransportationCommand) OrderID() int64                { return c.orderID }
func (c RequestTransportationCommand) Transporter() kernel.Principal { return c.transporter }
func (c RequestTransportationCommand) Distance() int64               { return c.distance }
