package participant

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrSlaughterhouseIsNotConstructed = errors.New("Slaughterhouse must be created via NewSlaughterhouse constructor")

// Slaughterhouse is the profile of a processing facility.
type Slaughterhouse struct {
	profile
	pricePerKg int64
	guard      guard.ConstructorGuard
}

func NewSlaughterhouse(id int64, owner kernel.Principal, location string, pricePerKg int64) (*Slaughterhouse, error) {
	p, err := newProfile(id, owner, location)
	if err = errors.Join(err, requireNonNegative("pricePerKg", pricePerKg)); err != nil {
		return nil, err
	}

	return &Slaughterhouse{
		profile:    p,
		pricePerKg: pricePerKg,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (s *Slaughterhouse) Validate() error {
	if s == nil {
		return ErrSlaughterhouseIsNotConstructed
	}
	return s.guard.Validate(ErrSlaughterhouseIsNotConstructed)
}

func (s *Slaughterhouse) ID() int64               { return s.id }
func (s *Slaughterhouse) Owner() kernel.Principal { return s.owner }
func (s *Slaughterhouse) Location() string        { return s.location }
func (s *Slaughterhouse) PricePerKg() int64       { return s.pricePerKg }
func (s *Slaughterhouse) Registered() bool        { return s.Validate() == nil }
