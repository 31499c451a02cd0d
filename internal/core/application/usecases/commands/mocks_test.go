package commands_test

import (
	"context"
	"time"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

var (
	seller      = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000a1")
	buyer       = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000b2")
	transporter = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000c3")
	stranger    = kernel.MustNewPrincipal("0x00000000000000000000000000000000000000d4")
)

type MockRoleRepository struct{ mock.Mock }

func (m *MockRoleRepository) Get(ctx context.Context, p kernel.Principal) (*role.Assignment, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*role.Assignment), args.Error(1)
}

func (m *MockRoleRepository) Add(ctx context.Context, a *role.Assignment) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

type MockParticipantRepository struct{ mock.Mock }

func (m *MockParticipantRepository) GetHerder(ctx context.Context, id int64) (*participant.Herder, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*participant.Herder), args.Error(1)
}

func (m *MockParticipantRepository) GetSlaughterhouse(_ context.Context, _ int64) (*participant.Slaughterhouse, error) {
	panic("not implemented in mock")
}

func (m *MockParticipantRepository) GetTransporter(_ context.Context, _ int64) (*participant.Transporter, error) {
	panic("not implemented in mock")
}

func (m *MockParticipantRepository) FindID(ctx context.Context, kind role.Role, owner kernel.Principal) (int64, error) {
	args := m.Called(ctx, kind, owner)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockParticipantRepository) AddHerder(ctx context.Context, h *participant.Herder) error {
	args := m.Called(ctx, h)
	return args.Error(0)
}

func (m *MockParticipantRepository) AddSlaughterhouse(ctx context.Context, s *participant.Slaughterhouse) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}

func (m *MockParticipantRepository) AddTransporter(ctx context.Context, t *participant.Transporter) error {
	args := m.Called(ctx, t)
	return args.Error(0)
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Get(ctx context.Context, id int64) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockSequenceRepository struct{ mock.Mock }

func (m *MockSequenceRepository) Next(ctx context.Context, name string, start int64) (int64, error) {
	args := m.Called(ctx, name, start)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) Peek(ctx context.Context, name string, start int64) (int64, error) {
	args := m.Called(ctx, name, start)
	return args.Get(0).(int64), args.Error(1)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

func (m *MockOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, ids []uuid.UUID, at time.Time) error {
	args := m.Called(ctx, ids, at)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	args := m.Called(ctx, messages)
	return args.Error(0)
}

// MockUoW satisfies every unit of work combination used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) RoleRepository() ports.RoleRepository {
	args := m.Called()
	return args.Get(0).(ports.RoleRepository)
}

func (m *MockUoW) ParticipantRepository() ports.ParticipantRepository {
	args := m.Called()
	return args.Get(0).(ports.ParticipantRepository)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) SequenceRepository() ports.SequenceRepository {
	args := m.Called()
	return args.Get(0).(ports.SequenceRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

// MockUoWFactory creates units of work of type T.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

// factoryOf wraps uows in a factory that hands them out once each, in order.
func factoryOf[T any](uows ...T) *MockUoWFactory[T] {
	f := new(MockUoWFactory[T])
	for _, uow := range uows {
		f.On("Create").Return(uow).Once()
	}
	return f
}

func mustAssignment(p kernel.Principal, r role.Role) *role.Assignment {
	if r == role.None {
		a, err := role.NewAssignment(p)
		if err != nil {
			panic(err)
		}
		return a
	}
	a, err := role.RestoreAssignment(p, r)
	if err != nil {
		panic(err)
	}
	return a
}

func mustHerder(id int64, owner kernel.Principal) *participant.Herder {
	h, err := participant.NewHerder(id, owner, "Location A", 100, 10,
		participant.AimagStats{TotalLivestock: 1000, PastureCarryingCapacity: 500, TotalHerderNumber: 100})
	if err != nil {
		panic(err)
	}
	return h
}

func placedOrder(id int64) *order.Order {
	o, err := order.NewOrder(id, 1, seller, buyer, 10)
	if err != nil {
		panic(err)
	}
	o.PullEvents()
	return o
}

func restoredOrder(s order.State) *order.Order {
	o, err := order.Restore(s)
	if err != nil {
		panic(err)
	}
	return o
}
