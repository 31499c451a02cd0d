package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRegisterTransporterCommandIsNotConstructed = errors.New(
	"RegisterTransporterCommand must be created via NewRegisterTransporterCommand constructor",
)

type RegisterTransporterCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Principal
	location   string
	truckInfo  string
	pricePerKm int64

	guard guard.ConstructorGuard
}

func NewRegisterTransporterCommand(
	actor kernel.Principal,
	location string,
	truckInfo string,
	pricePerKm int64,
) (RegisterTransporterCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterTransporterCommand{}, err
	}

	return RegisterTransporterCommand{
		actor:      actor,
		location:   location,
		truckInfo:  truckInfo,
		pricePerKm: pricePerKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterTransporterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTransporterCommandIsNotConstructed)
}

func (c RegisterTransporterCommand) Actor() kernel.Principal { return c.actor }
func (c RegisterTransporterCommand) Location() string        { return c.location }
func (c RegisterTransporterCommand) TruckInfo() string       { return c.truckInfo }
func (c RegisterTransporterCommand) PricePerKm() int64       { return c.pricePerKm }
