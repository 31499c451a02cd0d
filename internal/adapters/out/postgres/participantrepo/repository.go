package participantrepo

import (
	"context"
	"errors"

	"supplychain/internal/adapters/out/postgres/pgerr"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormParticipantRepository implements ParticipantRepository using GORM.
type GormParticipantRepository struct {
	db *gorm.DB
}

func NewGormParticipantRepository(db *gorm.DB) *GormParticipantRepository {
	return &GormParticipantRepository{db: db}
}

func (r *GormParticipantRepository) GetHerder(ctx context.Context, id int64) (*participant.Herder, error) {
	dto, err := first[HerderDTO](ctx, r.db, "herder", id)
	if err != nil {
		return nil, err
	}
	return herderToDomain(dto)
}

func (r *GormParticipantRepository) GetSlaughterhouse(
	ctx context.Context,
	id int64,
) (*participant.Slaughterhouse, error) {
	dto, err := first[SlaughterhouseDTO](ctx, r.db, "slaughterhouse", id)
	if err != nil {
		return nil, err
	}
	return slaughterhouseToDomain(dto)
}

func (r *GormParticipantRepository) GetTransporter(ctx context.Context, id int64) (*participant.Transporter, error) {
	dto, err := first[TransporterDTO](ctx, r.db, "transporter", id)
	if err != nil {
		return nil, err
	}
	return transporterToDomain(dto)
}

// FindID looks the owner up in the table of the given kind.
func (r *GormParticipantRepository) FindID(ctx context.Context, kind role.Role, owner kernel.Principal) (int64, error) {
	if err := owner.Validate(); err != nil {
		return 0, err
	}

	var model any
	switch kind {
	case role.Herder:
		model = &HerderDTO{}
	case role.Slaughterhouse:
		model = &SlaughterhouseDTO{}
	case role.Transporter:
		model = &TransporterDTO{}
	default:
		return 0, errs.NewValueIsInvalidError("participant kind")
	}

	var ids []int64
	err := r.db.WithContext(ctx).Model(model).Where("owner = ?", owner.String()).Limit(1).Pluck("id", &ids).Error
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, errs.NewObjectNotFoundError(kind.String()+" owner", owner.String())
	}
	return ids[0], nil
}

func (r *GormParticipantRepository) AddHerder(ctx context.Context, h *participant.Herder) error {
	if err := h.Validate(); err != nil {
		return err
	}
	dto := herderFromDomain(h)
	return r.insert(ctx, role.Herder, h.Owner(), &dto)
}

func (r *GormParticipantRepository) AddSlaughterhouse(ctx context.Context, s *participant.Slaughterhouse) error {
	if err := s.Validate(); err != nil {
		return err
	}
	dto := slaughterhouseFromDomain(s)
	return r.insert(ctx, role.Slaughterhouse, s.Owner(), &dto)
}

func (r *GormParticipantRepository) AddTransporter(ctx context.Context, t *participant.Transporter) error {
	if err := t.Validate(); err != nil {
		return err
	}
	dto := transporterFromDomain(t)
	return r.insert(ctx, role.Transporter, t.Owner(), &dto)
}

// insert checks the owner before writing so a duplicate does not abort the transaction.
func (r *GormParticipantRepository) insert(ctx context.Context, kind role.Role, owner kernel.Principal, dto any) error {
	_, err := r.FindID(ctx, kind, owner)
	switch {
	case err == nil:
		return errs.NewAlreadyRegisteredError(kind.String(), owner.String())
	case !errors.Is(err, errs.ErrObjectNotFound):
		return err
	}

	if err = r.db.WithContext(ctx).Create(dto).Error; err != nil {
		if pgerr.IsUniqueViolation(err) {
			return errs.NewAlreadyRegisteredErrorWithCause(kind.String(), owner.String(), err)
		}
		return err
	}
	return nil
}

func first[T any](ctx context.Context, db *gorm.DB, name string, id int64) (T, error) {
	var dto T
	if err := db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto, errs.NewObjectNotFoundError(name, id)
		}
		return dto, err
	}
	return dto, nil
}
