// Package http exposes the order engine over a JSON REST API served by echo.
package http

import (
	"log/slog"
	"net/http"
	"strings"

	"supplychain/internal/adapters/in/http/api"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/role"

	"github.com/labstack/echo/v4"
)

// PrincipalHeader carries the authenticated caller, set by the gateway in front of
// the service.
const PrincipalHeader = "X-Principal"

// Commands groups the command handlers the server dispatches to.
type Commands struct {
	ChooseRole                   commands.ChooseRoleCommandHandler
	RegisterHerder               commands.RegisterHerderCommandHandler
	RegisterSlaughterhouse       commands.RegisterSlaughterhouseCommandHandler
	RegisterTransporter          commands.RegisterTransporterCommandHandler
	PlaceOrder                   commands.PlaceOrderCommandHandler
	ConfirmOrder                 commands.ConfirmOrderCommandHandler
	RequestTransportation        commands.RequestTransportationCommandHandler
	ConfirmTransportationRequest commands.ConfirmTransportationRequestCommandHandler
	ConfirmPickUp                commands.ConfirmPickUpCommandHandler
	ConfirmDelivery              commands.ConfirmDeliveryCommandHandler
}

// Queries groups the query handlers the server dispatches to.
type Queries struct {
	GetUserRole       queries.GetUserRoleQueryHandler
	GetHerder         queries.GetHerderQueryHandler
	GetSlaughterhouse queries.GetSlaughterhouseQueryHandler
	GetTransporter    queries.GetTransporterQueryHandler
	GetParticipantID  queries.GetParticipantIDQueryHandler
	GetOrder          queries.GetOrderQueryHandler
	GetNextOrderID    queries.GetNextOrderIDQueryHandler
}

// Server implements api.ServerInterface on top of the application handlers.
type Server struct {
	commands Commands
	queries  Queries
	logger   *slog.Logger
}

var _ api.ServerInterface = (*Server)(nil)

func NewServer(c Commands, q Queries, logger *slog.Logger) *Server {
	return &Server{commands: c, queries: q, logger: logger.With("component", "http")}
}

// actor reads the caller from PrincipalHeader.
func actor(ctx echo.Context) (kernel.Principal, error) {
	value := strings.TrimSpace(ctx.Request().Header.Get(PrincipalHeader))
	if value == "" {
		return kernel.Principal{}, errMissingPrincipal
	}
	p, err := kernel.NewPrincipal(value)
	if err != nil {
		return kernel.Principal{}, &unauthenticatedError{cause: err}
	}
	return p, nil
}

func bind[T any](ctx echo.Context) (T, error) {
	var body T
	if err := ctx.Bind(&body); err != nil {
		return body, &badRequestError{message: "Invalid request body"}
	}
	return body, nil
}

// ChooseRole handles POST /api/v1/roles.
func (s *Server) ChooseRole(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[api.ChooseRoleJSONRequestBody](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	r, err := role.Parse(string(body.Role))
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewChooseRoleCommand(caller, r)
	if err != nil {
		return s.fail(ctx, err)
	}
	if err = s.commands.ChooseRole.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// GetUserRole handles GET /api/v1/roles/{principal}.
func (s *Server) GetUserRole(ctx echo.Context, principal string) error {
	p, err := kernel.NewPrincipal(principal)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetUserRoleQuery(p)
	if err != nil {
		return s.fail(ctx, err)
	}

	r, err := s.queries.GetUserRole.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.UserRole{Principal: p.String(), Role: api.UserRoleRole(r.String())})
}
