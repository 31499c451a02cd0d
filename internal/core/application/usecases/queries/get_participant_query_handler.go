package queries

import (
	"context"

	"supplychain/internal/core/ports"
)

// GetHerderQueryHandler returns NotFound for an id no herder was registered under.
type GetHerderQueryHandler struct {
	participants ports.ParticipantReader
}

func NewGetHerderQueryHandler(participants ports.ParticipantReader) GetHerderQueryHandler {
	return GetHerderQueryHandler{participants: participants}
}

func (h GetHerderQueryHandler) Handle(ctx context.Context, query GetParticipantQuery) (GetHerderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetHerderQueryResponse{}, err
	}

	herder, err := h.participants.GetHerder(ctx, query.ID())
	if err != nil {
		return GetHerderQueryResponse{}, err
	}

	aimag := herder.Aimag()
	return GetHerderQueryResponse{
		ID:                           herder.ID(),
		Owner:                        herder.Owner().String(),
		Location:                     herder.Location(),
		TotalLivestock:               herder.TotalLivestock(),
		PricePerKg:                   herder.PricePerKg(),
		AimagTotalLivestock:          aimag.TotalLivestock,
		AimagPastureCarryingCapacity: aimag.PastureCarryingCapacity,
		AimagTotalHerderNumber:       aimag.TotalHerderNumber,
		Registered:                   herder.Registered(),
	}, nil
}

type GetSlaughterhouseQueryHandler struct {
	participants ports.ParticipantReader
}

func NewGetSlaughterhouseQueryHandler(participants ports.ParticipantReader) GetSlaughterhouseQueryHandler {
	return GetSlaughterhouseQueryHandler{participants: participants}
}

func (h GetSlaughterhouseQueryHandler) Handle(
	ctx context.Context,
	query GetParticipantQuery,
) (GetSlaughterhouseQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetSlaughterhouseQueryResponse{}, err
	}

	s, err := h.participants.GetSlaughterhouse(ctx, query.ID())
	if err != nil {
		return GetSlaughterhouseQueryResponse{}, err
	}

	return GetSlaughterhouseQueryResponse{
		ID:         s.ID(),
		Owner:      s.Owner().String(),
		Location:   s.Location(),
		PricePerKg: s.PricePerKg(),
		Registered: s.Registered(),
	}, nil
}

type GetTransporterQueryHandler struct {
	participants ports.ParticipantReader
}

func NewGetTransporterQueryHandler(participants ports.ParticipantReader) GetTransporterQueryHandler {
	return GetTransporterQueryHandler{participants: participants}
}

func (h GetTransporterQueryHandler) Handle(
	ctx context.Context,
	query GetParticipantQuery,
) (GetTransporterQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetTransporterQueryResponse{}, err
	}

	t, err := h.participants.GetTransporter(ctx, query.ID())
	if err != nil {
		return GetTransporterQueryResponse{}, err
	}

	return GetTransporterQueryResponse{
		ID:         t.ID(),
		Owner:      t.Owner().String(),
		Location:   t.Location(),
		TruckInfo:  t.TruckInfo(),
		PricePerKm: t.PricePerKm(),
		Registered: t.Registered(),
	}, nil
}
