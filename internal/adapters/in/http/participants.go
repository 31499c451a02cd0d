package http

import (
	"net/http"

	"supplychain/internal/adapters/in/http/api"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"

	"github.com/labstack/echo/v4"
)

// RegisterHerder handles POST /api/v1/herders.
func (s *Server) RegisterHerder(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[api.RegisterHerderJSONRequestBody](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterHerderCommand(caller, body.Location, body.TotalLivestock, body.PricePerKg,
		participant.AimagStats{
			TotalLivestock:          body.AimagTotalLivestock,
			PastureCarryingCapacity: body.AimagPastureCarryingCapacity,
			TotalHerderNumber:       body.AimagTotalHerderNumber,
		})
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := s.commands.RegisterHerder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, api.ParticipantID{ID: id})
}

// GetHerder handles GET /api/v1/herders/{id}.
func (s *Server) GetHerder(ctx echo.Context, id int64) error {
	h, err := s.queries.GetHerder.Handle(ctx.Request().Context(), queries.NewGetParticipantQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Herder{
		ID:                           h.ID,
		Owner:                        h.Owner,
		Registered:                   h.Registered,
		Location:                     h.Location,
		TotalLivestock:               h.TotalLivestock,
		PricePerKg:                   h.PricePerKg,
		AimagTotalLivestock:          h.AimagTotalLivestock,
		AimagPastureCarryingCapacity: h.AimagPastureCarryingCapacity,
		AimagTotalHerderNumber:       h.AimagTotalHerderNumber,
	})
}

// GetHerderID handles GET /api/v1/herders/by-principal/{principal}.
func (s *Server) GetHerderID(ctx echo.Context, principal string) error {
	return s.participantID(ctx, role.Herder, principal)
}

// RegisterSlaughterhouse handles POST /api/v1/slaughterhouses.
func (s *Server) RegisterSlaughterhouse(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[api.RegisterSlaughterhouseJSONRequestBody](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterSlaughterhouseCommand(caller, body.Location, body.PricePerKg)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := s.commands.RegisterSlaughterhouse.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, api.ParticipantID{ID: id})
}

// GetSlaughterhouse handles GET /api/v1/slaughterhouses/{id}.
func (s *Server) GetSlaughterhouse(ctx echo.Context, id int64) error {
	sh, err := s.queries.GetSlaughterhouse.Handle(ctx.Request().Context(), queries.NewGetParticipantQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Slaughterhouse{
		ID:         sh.ID,
		Owner:      sh.Owner,
		Registered: sh.Registered,
		Location:   sh.Location,
		PricePerKg: sh.PricePerKg,
	})
}

// GetSlaughterhouseID handles GET /api/v1/slaughterhouses/by-principal/{principal}.
func (s *Server) GetSlaughterhouseID(ctx echo.Context, principal string) error {
	return s.participantID(ctx, role.Slaughterhouse, principal)
}

// RegisterTransporter handles POST /api/v1/transporters.
func (s *Server) RegisterTransporter(ctx echo.Context) error {
	caller, err := actor(ctx)
	if err != nil {
		return s.fail(ctx, err)
	}
	body, err := bind[api.RegisterTransporterJSONRequestBody](ctx)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewRegisterTransporterCommand(caller, body.Location, body.TruckInfo, body.PricePerKm)
	if err != nil {
		return s.fail(ctx, err)
	}
	id, err := s.commands.RegisterTransporter.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, api.ParticipantID{ID: id})
}

// GetTransporter handles GET /api/v1/transporters/{id}.
func (s *Server) GetTransporter(ctx echo.Context, id int64) error {
	t, err := s.queries.GetTransporter.Handle(ctx.Request().Context(), queries.NewGetParticipantQuery(id))
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.Transporter{
		ID:         t.ID,
		Owner:      t.Owner,
		Registered: t.Registered,
		Location:   t.Location,
		TruckInfo:  t.TruckInfo,
		PricePerKm: t.PricePerKm,
	})
}

// GetTransporterID handles GET /api/v1/transporters/by-principal/{principal}.
func (s *Server) GetTransporterID(ctx echo.Context, principal string) error {
	return s.participantID(ctx, role.Transporter, principal)
}

func (s *Server) participantID(ctx echo.Context, kind role.Role, principal string) error {
	p, err := kernel.NewPrincipal(principal)
	if err != nil {
		return s.fail(ctx, err)
	}
	query, err := queries.NewGetParticipantIDQuery(kind, p)
	if err != nil {
		return s.fail(ctx, err)
	}

	id, err := s.queries.GetParticipantID.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, api.ParticipantID{ID: id})
}
