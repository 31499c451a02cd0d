package participant

import (
	"errors"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrTransporterIsNotConstructed = errors.New("Transporter must be created via NewTransporter constructor")

// Transporter is the profile of a carrier that moves livestock between parties.
type Transporter struct {
	profile
	truckInfo  string
	pricePerKm int64
	guard      guard.ConstructorGuard
}

// NewTransporter builds a transporter profile. truckInfo is a free-form descriptor
// and may be empty.
func NewTransporter(
	id int64,
	owner kernel.Principal,
	location string,
	truckInfo string,
	pricePerKm int64,
) (*Transporter, error) {
	p, err := newProfile(id, owner, location)
	if err = errors.Join(err, requireNonNegative("pricePerKm", pricePerKm)); err != nil {
		return nil, err
	}

	return &Transporter{
		profile:    p,
		truckInfo:  strings.TrimSpace(truckInfo),
		pricePerKm: pricePerKm,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (t *Transporter) Validate() error {
	if t == nil {
		return ErrTransporterIsNotConstructed
	}
	return t.guard.Validate(ErrTransporterIsNotConstructed)
}

func (t *Transporter) ID() int64               { return t.id }
func (t *Transporter) Owner() kernel.Principal { return t.owner }
func (t *Transporter) Location() string        { return t.location }
func (t *Transporter) TruckInfo() string       { return t.truckInfo }
func (t *Transporter) PricePerKm() int64       { return t.pricePerKm }
func (t *Transporter) Registered() bool        { return t.Validate() == nil }
