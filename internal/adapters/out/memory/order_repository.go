package memory

import (
	"context"

	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/pkg/errs"
)

type orderRepository struct {
	st    *state
	track func(*order.Order)
}

func (r *orderRepository) Get(_ context.Context, id int64) (*order.Order, error) {
	if r.st == nil {
		return nil, ErrNoTransaction
	}
	return getOrder(r.st, id)
}

func (r *orderRepository) Add(_ context.Context, aggregate *order.Order) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, taken := r.st.orders[aggregate.ID()]; taken {
		return errs.NewValueIsInvalidError("order id is already in use")
	}
	r.st.orders[aggregate.ID()] = aggregate.State()
	r.track(aggregate)
	return nil
}

func (r *orderRepository) Update(_ context.Context, aggregate *order.Order) error {
	if r.st == nil {
		return ErrNoTransaction
	}
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if _, ok := r.st.orders[aggregate.ID()]; !ok {
		return errs.NewObjectNotFoundError("order", aggregate.ID())
	}
	r.st.orders[aggregate.ID()] = aggregate.State()
	r.track(aggregate)
	return nil
}

func getOrder(st *state, id int64) (*order.Order, error) {
	s, ok := st.orders[id]
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id)
	}
	return order.Restore(s)
}

type orderReader struct{ s *Store }

func (r orderReader) Get(_ context.Context, id int64) (*order.Order, error) {
	return read(r.s, func(st *state) (*order.Order, error) { return getOrder(st, id) })
}
