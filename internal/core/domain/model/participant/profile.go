package participant

import (
	"fmt"
	"strings"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"
)

// FirstID is the id given to the first profile of every kind.
const FirstID int64 = 1

// profile holds the attributes common to every participant kind.
type profile struct {
	id       int64
	owner    kernel.Principal
	location string
}

func newProfile(id int64, owner kernel.Principal, location string) (profile, error) {
	p := profile{}
	if id < FirstID {
		return profile{}, errs.NewValueIsInvalidErrorWithCause("id", fmt.Errorf("%d is less than %d", id, FirstID))
	}
	p.id = id

	if err := owner.Validate(); err != nil {
		return profile{}, err
	}
	p.owner = owner

	location = strings.TrimSpace(location)
	if location == "" {
		return profile{}, errs.NewValueIsRequiredError("location")
	}
	p.location = location

	return p, nil
}

func requireNonNegative(name string, v int64) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", v))
	}
	return nil
}
