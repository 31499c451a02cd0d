package commands

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/pkg/guard"
)

var ErrRegisterHerderCommandIsNotConstructed = errors.New(
	"RegisterHerderCommand must be created via NewRegisterHerderCommand constructor",
)

// RegisterHerderCommand carries the profile a principal with role Herder registers.
// Profile fields are validated by participant.NewHerder when the handler builds it.
type RegisterHerderCommand struct { //nolint:recvcheck //using for validation
	actor          kernel.Principal
	location       string
	totalLivestock int64
	pricePerKg     int64
	aimag          participant.AimagStats

	guard guard.ConstructorGuard
}

func NewRegisterHerderCommand(
	actor kernel.Principal,
	location string,
	totalLivestock int64,
	pricePerKg int64,
	aimag participant.AimagStats,
) (RegisterHerderCommand, error) {
	if err := actor.Validate(); err != nil {
		return RegisterHerderCommand{}, err
	}

	return RegisterHerderCommand{
		actor:          actor,
		location:       location,
		totalLivestock: totalLivestock,
		pricePerKg:     pricePerKg,
		aimag:          aimag,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c RegisterHerderCommand) Validate() error {
	return c.guard.Validate(ErrRegisterHerderCommandIsNotConstructed)
}

func (c RegisterHerderCommand) Actor() kernel.Principal       { return c.actor }
func (c RegisterHerderCommand) Location() string              { return c.location }
func (c RegisterHerderCommand) TotalLivestock() int64         { return c.totalLivestock }
func (c RegisterHerderCommand) PricePerKg() int64             { return c.pricePerKg }
func (c RegisterHerderCommand) Aimag() participant.AimagStats { return c.aimag }
