package order

import (
	"errors"
	"fmt"
	"slices"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// State is the flat snapshot of an Order used by storage adapters and read models.
// Transporter is nil until transportation is requested.
type State struct {
	ID               int64
	HerderID         int64
	Seller           kernel.Principal
	Buyer            kernel.Principal
	Quantity         int64
	Status           Status
	Phase            TransitPhase
	Transporter      *kernel.Principal
	Distance         int64
	PickedUpQuantity int64
	EarTags          []int64
}

// State returns a copy of the order's current attributes.
func (o *Order) State() State {
	s := State{
		ID:               o.id,
		HerderID:         o.herderID,
		Seller:           o.seller,
		Buyer:            o.buyer,
		Quantity:         o.quantity,
		Status:           o.status,
		Phase:            o.phase,
		Distance:         o.distance,
		PickedUpQuantity: o.pickedUpQuantity,
		EarTags:          slices.Clone(o.earTags),
	}
	if o.transporter != nil {
		t := *o.transporter
		s.Transporter = &t
	}
	return s
}

// Restore rebuilds an order loaded from storage. The snapshot must describe a
// state reachable through the lifecycle; no events are recorded.
func Restore(s State) (*Order, error) {
	o, err := NewOrder(s.ID, s.HerderID, s.Seller, s.Buyer, s.Quantity)
	if err != nil {
		return nil, err
	}
	o.events = nil

	if err = errors.Join(s.Status.Validate(), s.Phase.Validate()); err != nil {
		return nil, err
	}
	if err = s.Phase.ValidateCanHavePhase(s.Status); err != nil {
		return nil, err
	}

	transported := s.Status == InTransit || s.Status == Completed
	switch {
	case transported && s.Transporter == nil:
		return nil, errs.NewValueIsRequiredErrorWithCause("transporter",
			fmt.Errorf("%s requires a transporter", s.Status))
	case !transported && s.Transporter != nil:
		return nil, errs.NewValueIsInvalidErrorWithCause("transporter",
			fmt.Errorf("%s cannot have a transporter", s.Status))
	}

	if transported {
		if err = errors.Join(s.Transporter.Validate(), validateDistance(s.Distance)); err != nil {
			return nil, err
		}
		t := *s.Transporter
		o.transporter = &t
		o.distance = s.Distance
	}

	pickedUp := s.Status == Completed || s.Phase == PickedUp
	if pickedUp {
		if s.PickedUpQuantity < 1 || s.PickedUpQuantity > s.Quantity {
			return nil, errs.NewValueIsOutOfRangeError("quantityPickedUp", s.PickedUpQuantity, 1, s.Quantity)
		}
		o.pickedUpQuantity = s.PickedUpQuantity
	} else if s.PickedUpQuantity != 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("quantityPickedUp",
			fmt.Errorf("%s has not been picked up", describe(s.Status, s.Phase)))
	}

	if s.Status == Completed {
		if err = validateEarTags(s.EarTags, s.PickedUpQuantity); err != nil {
			return nil, err
		}
		o.earTags = slices.Clone(s.EarTags)
	} else if len(s.EarTags) > 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("earTagNumbers",
			fmt.Errorf("%s has no recorded delivery", s.Status))
	}

	o.status = s.Status
	o.phase = s.Phase
	return o, nil
}
