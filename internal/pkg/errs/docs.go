// Package errs provides standardized error types for the supply-chain engine.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for the validation family:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//
// All three satisfy errors.Is(err, ErrInvalidArgument).
//
// And for the registry and order lifecycle:
//   - ObjectNotFoundError: For when an object cannot be found
//   - AlreadyAssignedError: For a second role choice by the same principal
//   - WrongRoleError: For a registration under a mismatched or unset role
//   - AlreadyRegisteredError: For a duplicate profile registration
//   - UnauthorizedError: For a caller that is not the designated actor of a stage
//   - InvalidStateError: For an operation attempted outside its required phase
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
