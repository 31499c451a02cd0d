package kernel

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"supplychain/internal/pkg/errs"
	"supplychain/internal/pkg/guard"
)

// MaxPrincipalLength bounds the byte length of a principal identifier.
const MaxPrincipalLength = 256

var (
	// ErrPrincipalIsNotConstructed is returned when validating a zero-value Principal.
	ErrPrincipalIsNotConstructed = errs.NewValueIsRequiredError("principal must be created via NewPrincipal")

	addressPattern = regexp.MustCompile(`^0[xX][0-9a-fA-F]{40}$`)
)

// Principal is the opaque identity of an actor (e.g. a wallet-style address).
// Two principals are equal when their normalised identifiers are equal.
//
// Example:
//
//	buyer, err := kernel.NewPrincipal("0x5B38Da6a701c568545dCfcB03FcB875f56beddC4")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(buyer) // 0x5b38da6a701c568545dcfcb03fcb875f56beddc4
type Principal struct {
	id    string
	guard guard.ConstructorGuard
}

// NewPrincipal validates and normalises an identifier. Surrounding whitespace is
// trimmed; a 0x-prefixed 20-byte hex address is lower-cased.
func NewPrincipal(id string) (Principal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Principal{}, errs.NewValueIsRequiredError("principal")
	}
	if len(id) > MaxPrincipalLength {
		return Principal{}, errs.NewValueIsOutOfRangeError("principal length", len(id), 1, MaxPrincipalLength)
	}
	if strings.IndexFunc(id, unicode.IsSpace) >= 0 {
		return Principal{}, errs.NewValueIsInvalidErrorWithCause(
			"principal", fmt.Errorf("%q contains whitespace", id))
	}
	if addressPattern.MatchString(id) {
		id = strings.ToLower(id)
	}

	return Principal{id: id, guard: guard.NewConstructorGuard()}, nil
}

// MustNewPrincipal is NewPrincipal for identifiers known to be valid. It panics otherwise.
func MustNewPrincipal(id string) Principal {
	p, err := NewPrincipal(id)
	if err != nil {
		panic(err)
	}
	return p
}

// Validate reports whether the principal was built by NewPrincipal.
func (p Principal) Validate() error {
	return p.guard.Validate(ErrPrincipalIsNotConstructed)
}

// String returns the normalised identifier.
func (p Principal) String() string {
	return p.id
}

// IsEqual reports whether both principals identify the same actor.
// A zero value is never equal to anything.
func (p Principal) IsEqual(other Principal) bool {
	return p.Validate() == nil && other.Validate() == nil && p.id == other.id
}
