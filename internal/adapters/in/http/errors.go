package http

import (
	"errors"
	"net/http"

	"supplychain/internal/adapters/in/http/api"
	"supplychain/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

var errMissingPrincipal = errors.New("missing " + PrincipalHeader + " header")

type unauthenticatedError struct {
	cause error
}

func (e *unauthenticatedError) Error() string {
	return "invalid " + PrincipalHeader + " header: " + e.cause.Error()
}

func (e *unauthenticatedError) Unwrap() error {
	return e.cause
}

type badRequestError struct {
	message string
}

func (e *badRequestError) Error() string {
	return e.message
}

// StatusOf maps an application error to its HTTP status.
func StatusOf(err error) int {
	var unauthenticated *unauthenticatedError
	var badRequest *badRequestError
	switch {
	case errors.Is(err, errMissingPrincipal), errors.As(err, &unauthenticated):
		return http.StatusUnauthorized
	case errors.As(err, &badRequest), errors.Is(err, errs.ErrInvalidArgument):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrUnauthorized), errors.Is(err, errs.ErrWrongRole):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrInvalidState),
		errors.Is(err, errs.ErrAlreadyAssigned),
		errors.Is(err, errs.ErrAlreadyRegistered):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as an api.Error. Internal errors are logged and answered with a
// generic message.
func (s *Server) fail(ctx echo.Context, err error) error {
	status := StatusOf(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		message = http.StatusText(status)
	}
	return ctx.JSON(status, api.Error{Code: status, Message: message})
}
