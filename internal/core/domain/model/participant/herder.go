package participant

import (
	"errors"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/guard"
)

var ErrHerderIsNotConstructed = errors.New("Herder must be created via NewHerder constructor")

// AimagStats is the regional (aimag) context a herder declares at registration.
type AimagStats struct {
	TotalLivestock          int64
	PastureCarryingCapacity int64
	TotalHerderNumber       int64
}

// Herder is the profile of a livestock producer.
type Herder struct {
	profile
	totalLivestock int64
	pricePerKg     int64
	aimag          AimagStats
	guard          guard.ConstructorGuard
}

// NewHerder validates and builds a registered herder profile.
//
// Example:
//
//	h, err := participant.NewHerder(1, owner, "Location A", 100, 10,
//	    participant.AimagStats{TotalLivestock: 1000, PastureCarryingCapacity: 500, TotalHerderNumber: 100})
func NewHerder(
	id int64,
	owner kernel.Principal,
	location string,
	totalLivestock int64,
	pricePerKg int64,
	aimag AimagStats,
) (*Herder, error) {
	p, err := newProfile(id, owner, location)
	if err = errors.Join(
		err,
		requireNonNegative("totalLivestock", totalLivestock),
		requireNonNegative("pricePerKg", pricePerKg),
		requireNonNegative("aimagTotalLivestock", aimag.TotalLivestock),
		requireNonNegative("aimagPastureCarryingCapacity", aimag.PastureCarryingCapacity),
		requireNonNegative("aimagTotalHerderNumber", aimag.TotalHerderNumber),
	); err != nil {
		return nil, err
	}

	return &Herder{
		profile:        p,
		totalLivestock: totalLivestock,
		pricePerKg:     pricePerKg,
		aimag:          aimag,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (h *Herder) Validate() error {
	if h == nil {
		return ErrHerderIsNotConstructed
	}
	return h.guard.Validate(ErrHerderIsNotConstructed)
}

func (h *Herder) ID() int64               { return h.id }
func (h *Herder) Owner() kernel.Principal { return h.owner }
func (h *Herder) Location() string        { return h.location }
func (h *Herder) TotalLivestock() int64   { return h.totalLivestock }
func (h *Herder) PricePerKg() int64       { return h.pricePerKg }
func (h *Herder) Aimag() AimagStats       { return h.aimag }
func (h *Herder) Registered() bool        { return h.Validate() == nil }
