package errs

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrObjectNotFound    = errors.New("object not found")
	ErrValueIsInvalid    = errors.New("value is invalid")
	ErrValueIsOutOfRange = errors.New("value is out of range")
	ErrValueIsRequired   = errors.New("value is required")
	ErrAlreadyAssigned   = errors.New("role already assigned")
	ErrWrongRole         = errors.New("wrong role")
	ErrAlreadyRegistered = errors.New("already registered")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrInvalidState      = errors.New("invalid state")
)

func sanitize(v any) string {
	return strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(fmt.Sprintf("%v", v))
}

func withCause(msg string, cause error) string {
	if cause == nil {
		return msg
	}
	return fmt.Sprintf("%s (cause: %v)", msg, cause)
}

// ObjectNotFoundError reports a lookup of an id that does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	return withCause(fmt.Sprintf("%s: %s %s", ErrObjectNotFound, e.ParamName, sanitize(e.ID)), e.Cause)
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError reports a structurally invalid argument.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName), e.Cause)
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

func (e *ValueIsInvalidError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValueIsOutOfRangeError reports a value outside [Min, Max].
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

func NewValueIsOutOfRangeError(paramName string, value, lowerBound, upperBound any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: lowerBound, Max: upperBound}
}

func NewValueIsOutOfRangeErrorWithCause(
	paramName string,
	value, lowerBound, upperBound any,
	cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{
		ParamName: paramName,
		Value:     value,
		Min:       lowerBound,
		Max:       upperBound,
		Cause:     cause,
	}
}

func (e *ValueIsOutOfRangeError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is %s, min value is %s, max value is %s",
		ErrValueIsInvalid, sanitize(e.Value), e.ParamName, sanitize(e.Min), sanitize(e.Max)), e.Cause)
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

func (e *ValueIsOutOfRangeError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// ValueIsRequiredError reports a missing argument.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName), e.Cause)
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

func (e *ValueIsRequiredError) Is(target error) bool {
	return target == ErrInvalidArgument
}

// AlreadyAssignedError reports a second role choice by the same principal.
type AlreadyAssignedError struct {
	Principal string
	Role      string
	Cause     error
}

func NewAlreadyAssignedError(principal, role string) *AlreadyAssignedError {
	return &AlreadyAssignedError{Principal: principal, Role: role}
}

func NewAlreadyAssignedErrorWithCause(principal, role string, cause error) *AlreadyAssignedError {
	return &AlreadyAssignedError{Principal: principal, Role: role, Cause: cause}
}

func (e *AlreadyAssignedError) Error() string {
	return withCause(fmt.Sprintf("%s: %s already has role %s", ErrAlreadyAssigned, e.Principal, e.Role), e.Cause)
}

func (e *AlreadyAssignedError) Unwrap() error {
	return ErrAlreadyAssigned
}

// WrongRoleError reports an operation that needs a role the principal does not hold.
type WrongRoleError struct {
	Principal string
	Actual    string
	Required  string
}

func NewWrongRoleError(principal, actual, required string) *WrongRoleError {
	return &WrongRoleError{Principal: principal, Actual: actual, Required: required}
}

func (e *WrongRoleError) Error() string {
	return fmt.Sprintf("%s: %s has role %s, %s required", ErrWrongRole, e.Principal, e.Actual, e.Required)
}

func (e *WrongRoleError) Unwrap() error {
	return ErrWrongRole
}

// AlreadyRegisteredError reports a duplicate profile registration.
type AlreadyRegisteredError struct {
	Kind      string
	Principal string
	Cause     error
}

func NewAlreadyRegisteredError(kind, principal string) *AlreadyRegisteredError {
	return &AlreadyRegisteredError{Kind: kind, Principal: principal}
}

func NewAlreadyRegisteredErrorWithCause(kind, principal string, cause error) *AlreadyRegisteredError {
	return &AlreadyRegisteredError{Kind: kind, Principal: principal, Cause: cause}
}

func (e *AlreadyRegisteredError) Error() string {
	return withCause(fmt.Sprintf("%s: %s is already registered as %s", ErrAlreadyRegistered, e.Principal, e.Kind), e.Cause)
}

func (e *AlreadyRegisteredError) Unwrap() error {
	return ErrAlreadyRegistered
}

// UnauthorizedError reports a caller that is not the designated actor for an operation.
type UnauthorizedError struct {
	Operation string
	Actor     string
}

func NewUnauthorizedError(operation, actor string) *UnauthorizedError {
	return &UnauthorizedError{Operation: operation, Actor: actor}
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed to %s", ErrUnauthorized, e.Actor, e.Operation)
}

func (e *UnauthorizedError) Unwrap() error {
	return ErrUnauthorized
}

// InvalidStateError reports an operation attempted outside its required phase.
type InvalidStateError struct {
	Operation string
	State     string
}

func NewInvalidStateError(operation, state string) *InvalidStateError {
	return &InvalidStateError{Operation: operation, State: state}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s in state %s", ErrInvalidState, e.Operation, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}
