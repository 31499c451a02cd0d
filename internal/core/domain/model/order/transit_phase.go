package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// TransitPhase tracks progress inside the InTransit status.
//
//	Assigned ──> Accepted ──> PickedUp
//
// The phase is None whenever the status is not InTransit.
type TransitPhase int

const (
	NoPhase TransitPhase = iota
	// Assigned: the buyer named a transporter, who has not accepted yet.
	Assigned
	// Accepted: the transporter acknowledged the request.
	Accepted
	// PickedUp: the transporter confirmed the picked-up quantity.
	PickedUp
)

func getPhaseStrings() map[TransitPhase]string {
	return map[TransitPhase]string{
		NoPhase:  "NONE",
		Assigned: "ASSIGNED",
		Accepted: "ACCEPTED",
		PickedUp: "PICKED_UP",
	}
}

func (p TransitPhase) String() string {
	if str, ok := getPhaseStrings()[p]; ok {
		return str
	}
	return "UNKNOWN"
}

func (p TransitPhase) Validate() error {
	if _, ok := getPhaseStrings()[p]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("transit phase is invalid", fmt.Errorf("%d is not a valid phase", p))
	}
	return nil
}

// Accept transitions Assigned -> Accepted.
func (p TransitPhase) Accept() (TransitPhase, error) {
	if p != Assigned {
		return NoPhase, errs.NewInvalidStateError("accept transportation", describe(InTransit, p))
	}
	return Accepted, nil
}

// PickUp transitions Accepted -> PickedUp.
func (p TransitPhase) PickUp() (TransitPhase, error) {
	if p != Accepted {
		return NoPhase, errs.NewInvalidStateError("confirm pick up", describe(InTransit, p))
	}
	return PickedUp, nil
}

// RequirePickedUp fails unless the pick-up has been confirmed.
func (p TransitPhase) RequirePickedUp(operation string) error {
	if p != PickedUp {
		return errs.NewInvalidStateError(operation, describe(InTransit, p))
	}
	return nil
}

// ValidateCanHavePhase checks that the phase is consistent with the status.
func (p TransitPhase) ValidateCanHavePhase(s Status) error {
	if s == InTransit && p == NoPhase {
		return errs.NewValueIsInvalidErrorWithCause("transit phase is invalid",
			fmt.Errorf("%s requires a transit phase", s))
	}
	if s != InTransit && p != NoPhase {
		return errs.NewValueIsInvalidErrorWithCause("transit phase is invalid",
			fmt.Errorf("%s cannot have phase %s", s, p))
	}
	return nil
}

func describe(s Status, p TransitPhase) string {
	if p == NoPhase {
		return s.String()
	}
	return s.String() + "/" + p.String()
}
