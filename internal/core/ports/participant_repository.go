package ports

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
)

// ParticipantReader looks up registered profiles. Each kind has its own id space.
type ParticipantReader interface {
	GetHerder(ctx context.Context, id int64) (*participant.Herder, error)
	GetSlaughterhouse(ctx context.Context, id int64) (*participant.Slaughterhouse, error)
	GetTransporter(ctx context.Context, id int64) (*participant.Transporter, error)

	// FindID returns the id of the profile of the given kind owned by owner.
	// Returns errs.ObjectNotFoundError when the principal has not registered one.
	FindID(ctx context.Context, kind role.Role, owner kernel.Principal) (int64, error)
}

// ParticipantRepository stores profiles. A principal owns at most one profile per kind;
// adding a second returns errs.AlreadyRegisteredError.
type ParticipantRepository interface {
	ParticipantReader

	AddHerder(ctx context.Context, h *participant.Herder) error
	AddSlaughterhouse(ctx context.Context, s *participant.Slaughterhouse) error
	AddTransporter(ctx context.Context, t *participant.Transporter) error
}
