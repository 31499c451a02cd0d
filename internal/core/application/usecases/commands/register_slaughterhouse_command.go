package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrRegisterSlaughterhouseCommandIsNotConstructed = errors.New(
	"RegisterSlaughterhouseCommand must be created via NewRegisterSlaughterhouseCommand constructor",
)

type RegisterSlaughterhouseCommand struct { //nolint:recvcheck //using for validation
	actor      kernel.Principal
	location   string
	pricePerKg int64

	guard guard.ConstructorGuard
}

func NewRegisterSlaughterhouseCommand(
	actor kernel.Principal,
	location string,
	pricePerKg int64,
) (RegisterSlaughterhouseCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterSlaughterhouseCommand{}, err
	}

	return RegisterSlaughterhouseCommand{
		actor:      actor,
		location:   location,
		pricePerKg: pricePerKg,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterSlaughterhouseCommand) Validate() error {
	return c.guard.Validate(ErrRegisterSlaughterhouseCommandIsNotConstructed)
}

func (c RegisterSlaughterhouseCommand) Actor() kernel.Principal { return c.actor }
func (c RegisterSlaughterhouseCommand) Location() string        { return c.location }
func (c RegisterSlaughterhouseCommand) PricePerKg() int64       { return c.pricePerKg }
