package memory

import (
	"context"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/pkg/errs"
)

type participantRepository struct {
	st *state
}

func (r *participantRepository) GetHerder(_ context.Context, id int64) (*participant.Herder, error) {
	if r.st == nil {
		return nil, ErrNoTransaction
	}
	return lookup(r.st.herders, "herder", id)
}

func (r *participantRepository) GetSlaughterhouse(_ context.Context, id int64) (*participant.Slaughterhouse, error) {
	if r.st == nil {
		return nil, ErrNoTransaction
	}
	return lookup(r.st.slaughterhouses, "slaughterhouse", id)
}

func (r *participantRepository) GetTransporter(_ context.Context, id int64) (*participant.Transporter, error) {
	if r.st == nil {
		return nil, ErrNoTransaction
	}
	return lookup(r.st.transporters, "transporter", id)
}

func (r *participantRepository) FindID(_ context.Context, kind role.Role, owner kernel.Principal) (int64, error) {
	if r.st == nil {
		return 0, ErrNoTransaction
	}
	return findID(r.st, kind, owner)
}

func (r *participantRepository) AddHerder(_ context.Context, h *participant.Herder) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := h.Validate(); err != nil {
		return err
	}
	return insert(r.st, r.st.herders, role.Herder, h.ID(), h.Owner(), h)
}

func (r *participantRepository) AddSlaughterhouse(_ context.Context, s *participant.Slaughterhouse) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := s.Validate(); err != nil {
		return err
	}
	return insert(r.st, r.st.slaughterhouses, role.Slaughterhouse, s.ID(), s.Owner(), s)
}

func (r *participantRepository) AddTransporter(_ context.Context, t *participant.Transporter) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := t.Validate(); err != nil {
		return err
	}
	return insert(r.st, r.st.transporters, role.Transporter, t.ID(), t.Owner(), t)
}

func lookup[T any](table map[int64]*T, name string, id int64) (*T, error) {
	p, ok := table[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError(name, id)
	}
	return p, nil
}

func insert[T any](st *state, table map[int64]*T, kind role.Role, id int64, owner kernel.Principal, p *T) error {
	if _, taken := st.owners[kind][owner.String()]; taken {
		return errs.NewAlreadyRegisteredError(kind.String(), owner.String())
	}
	if _, taken := table[id]; taken {
		return errs.NewValueIsInvalidError(kind.String() + " id is already in use")
	}
	table[id] = p
	st.owners[kind][owner.String()] = id
	return nil
}

func findID(st *state, kind role.Role, owner kernel.Principal) (int64, error) {
	if !kind.IsRegistrable() {
		return 0, errs.NewValueIsInvalidError("participant kind")
	}
	id, ok := st.owners[kind][owner.String()]
	if !ok {
		return 0, errs.NewObjectNotFoundError(kind.String()+" owner", owner.String())
	}
	return id, nil
}

type participantReader struct{ s *Store }

func (r participantReader) GetHerder(_ context.Context, id int64) (*participant.Herder, error) {
	return read(r.s, func(st *state) (*participant.Herder, error) { return lookup(st.herders, "herder", id) })
}

func (r participantReader) GetSlaughterhouse(_ context.Context, id int64) (*participant.Slaughterhouse, error) {
	return read(r.s, func(st *state) (*participant.Slaughterhouse, error) {
		return lookup(st.slaughterhouses, "slaughterhouse", id)
	})
}

func (r participantReader) GetTransporter(_ context.Context, id int64) (*participant.Transporter, error) {
	return read(r.s, func(st *state) (*participant.Transporter, error) {
		return lookup(st.transporters, "transporter", id)
	})
}

func (r participantReader) FindID(_ context.Context, kind role.Role, owner kernel.Principal) (int64, error) {
	return read(r.s, func(st *state) (int64, error) { return findID(st, kind, owner) })
}
