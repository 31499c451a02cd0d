package queries

import (
	"context"

	"supplychain/internal/core/ports"
)

// GetParticipantIDQueryHandler returns NotFound when the principal owns no profile
// of the requested kind.
type GetParticipantIDQueryHandler struct {
	participants ports.ParticipantReader
}

func NewGetParticipantIDQueryHandler(participants ports.ParticipantReader) GetParticipantIDQueryHandler {
	return GetParticipantIDQueryHandler{participants: participants}
}

func (h GetParticipantIDQueryHandler) Handle(ctx context.Context, query GetParticipantIDQuery) (int64, error) {
	if err := query.Validate(); err != nil {
		return 0, err
	}
	return h.participants.FindID(ctx, query.Kind(), query.Principal())
}
