package role

import (
	"fmt"
	"strings"

	"supplychain/internal/pkg/errs"
)

// Role is the category a principal registers under.
type Role int

const (
	// None is the role of a principal that has not chosen one yet.
	None Role = iota
	Herder
	Slaughterhouse
	Transporter
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		None:           "NONE",
		Herder:         "HERDER",
		Slaughterhouse: "SLAUGHTERHOUSE",
		Transporter:    "TRANSPORTER",
	}
}

// String returns the upper-case role name, or "UNKNOWN" for out-of-range values.
func (r Role) String() string {
	if s, ok := getRoleStrings()[r]; ok {
		return s
	}
	return "UNKNOWN"
}

// Validate accepts None and the three registrable roles.
func (r Role) Validate() error {
	if _, ok := getRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// IsRegistrable reports whether a principal may choose this role.
func (r Role) IsRegistrable() bool {
	return r == Herder || r == Slaughterhouse || r == Transporter
}

// Parse converts a case-insensitive role name into a Role.
func Parse(s string) (Role, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for r, str := range getRoleStrings() {
		if str == name {
			return r, nil
		}
	}
	return None, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a valid role", s))
}
