package order

import (
	"fmt"

	"supplychain/internal/pkg/errs"
)

// Status is the externally visible lifecycle state of an order.
//
// State transitions:
//
//	Placed ──┬──> Confirmed ──> InTransit ──> Completed
//	         └──> Rejected
type Status int

const (
	// Unknown (0) helps catch uninitialized Status values.
	Unknown Status = iota
	Placed
	Confirmed
	Rejected
	InTransit
	Completed
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "UNKNOWN",
		Placed:    "PLACED",
		Confirmed: "CONFIRMED",
		Rejected:  "REJECTED",
		InTransit: "IN_TRANSIT",
		Completed: "COMPLETED",
	}
}

// Validate checks that the status is one of the lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok || s == Unknown {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}

// IsTerminal reports whether no further transition is possible.
func (s Status) IsTerminal() bool {
	return s == Rejected || s == Completed
}

// Confirm transitions Placed -> Confirmed.
func (s Status) Confirm() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidStateError("confirm order", s.String())
	}
	return Confirmed, nil
}

// Reject transitions Placed -> Rejected.
func (s Status) Reject() (Status, error) {
	if s != Placed {
		return Unknown, errs.NewInvalidStateError("reject order", s.String())
	}
	return Rejected, nil
}

// StartTransit transitions Confirmed -> InTransit.
func (s Status) StartTransit() (Status, error) {
	if s != Confirmed {
		return Unknown, errs.NewInvalidStateError("request transportation", s.String())
	}
	return InTransit, nil
}

// Complete transitions InTransit -> Completed.
func (s Status) Complete() (Status, error) {
	if s != InTransit {
		return Unknown, errs.NewInvalidStateError("confirm delivery", s.String())
	}
	return Completed, nil
}
