package commands_test

import (
	"context"
	"testing"

	"supplychain/internal/adapters/out/memory"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/domain/model/participant"
	"supplychain/internal/core/domain/model/role"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type uowFunc[T any] func() T

func (f uowFunc[T]) Create() T { return f() }

// ScenarioTestSuite drives the handlers against the in-memory store.
type ScenarioTestSuite struct {
	suite.Suite
	store *memory.Store

	chooseRole      commands.ChooseRoleCommandHandler
	registerHerder  commands.RegisterHerderCommandHandler
	registerCarrier commands.RegisterTransporterCommandHandler
	placeOrder      commands.PlaceOrderCommandHandler
	confirmOrder    commands.ConfirmOrderCommandHandler
	request         commands.RequestTransportationCommandHandler
	accept          commands.ConfirmTransportationRequestCommandHandler
	pickUp          commands.ConfirmPickUpCommandHandler
	deliver         commands.ConfirmDeliveryCommandHandler
}

func (s *ScenarioTestSuite) SetupTest() {
	s.store = memory.NewStore()
	create := s.store.Create

	s.chooseRole = commands.NewChooseRoleCommandHandler(
		uowFunc[commands.RoleUoW](func() commands.RoleUoW { return create() }))
	registration := uowFunc[commands.RegistrationUoW](func() commands.RegistrationUoW { return create() })
	s.registerHerder = commands.NewRegisterHerderCommandHandler(registration)
	s.registerCarrier = commands.NewRegisterTransporterCommandHandler(registration)
	s.placeOrder = commands.NewPlaceOrderCommandHandler(
		uowFunc[commands.PlaceOrderUoW](func() commands.PlaceOrderUoW { return create() }))
	orders := uowFunc[commands.OrderUoW](func() commands.OrderUoW { return create() })
	s.confirmOrder = commands.NewConfirmOrderCommandHandler(orders)
	s.request = commands.NewRequestTransportationCommandHandler(
		uowFunc[commands.TransportationUoW](func() commands.TransportationUoW { return create() }))
	s.accept = commands.NewConfirmTransportationRequestCommandHandler(orders)
	s.pickUp = commands.NewConfirmPickUpCommandHandler(orders)
	s.deliver = commands.NewConfirmDeliveryCommandHandler(orders)
}

func (s *ScenarioTestSuite) choose(p kernel.Principal, r role.Role) error {
	cmd, err := commands.NewChooseRoleCommand(p, r)
	s.Require().NoError(err)
	return s.chooseRole.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) herder(p kernel.Principal) (int64, error) {
	cmd, err := commands.NewRegisterHerderCommand(p, "Location A", 100, 10,
		participant.AimagStats{TotalLivestock: 1000, PastureCarryingCapacity: 500, TotalHerderNumber: 100})
	s.Require().NoError(err)
	return s.registerHerder.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) carrier(p kernel.Principal) (int64, error) {
	cmd, err := commands.NewRegisterTransporterCommand(p, "Location C", "Truck", 5)
	s.Require().NoError(err)
	return s.registerCarrier.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) order(p kernel.Principal, herderID, quantity int64) (int64, error) {
	cmd, err := commands.NewPlaceOrderCommand(p, herderID, quantity)
	s.Require().NoError(err)
	return s.placeOrder.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) confirm(p kernel.Principal, id int64, accept bool) error {
	cmd, _ := commands.NewConfirmOrderCommand(p, id, accept)
	return s.confirmOrder.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) requestTransport(p kernel.Principal, id int64, t kernel.Principal, distance int64) error {
	cmd, _ := commands.NewRequestTransportationCommand(p, id, t, distance)
	return s.request.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) acceptTransport(p kernel.Principal, id int64) error {
	cmd, _ := commands.NewConfirmTransportationRequestCommand(p, id)
	return s.accept.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) pick(p kernel.Principal, id, quantity int64) error {
	cmd, _ := commands.NewConfirmPickUpCommand(p, id, quantity)
	return s.pickUp.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) delivery(p kernel.Principal, id int64, tags ...int64) error {
	cmd, _ := commands.NewConfirmDeliveryCommand(p, id, tags)
	return s.deliver.Handle(context.Background(), cmd)
}

func (s *ScenarioTestSuite) stored(id int64) *order.Order {
	o, err := s.store.Orders().Get(context.Background(), id)
	s.Require().NoError(err)
	return o
}

// setup registers herder H and transporter T.
func (s *ScenarioTestSuite) setup() int64 {
	s.Require().NoError(s.choose(seller, role.Herder))
	herderID, err := s.herder(seller)
	s.Require().NoError(err)
	s.Require().NoError(s.choose(transporter, role.Transporter))
	_, err = s.carrier(transporter)
	s.Require().NoError(err)
	return herderID
}

func (s *ScenarioTestSuite) TestFullLifecycle() {
	herderID := s.setup()
	s.Equal(participant.FirstID, herderID)

	id, err := s.order(buyer, herderID, 10)
	s.Require().NoError(err)
	s.Equal(order.FirstID, id)
	s.Equal(order.Placed, s.stored(id).Status())

	s.Require().ErrorIs(s.confirm(buyer, id, true), errs.ErrUnauthorized)
	s.Require().NoError(s.confirm(seller, id, true))
	s.Equal(order.Confirmed, s.stored(id).Status())

	s.Require().ErrorIs(s.requestTransport(transporter, id, transporter, 100), errs.ErrUnauthorized)
	s.Require().NoError(s.requestTransport(buyer, id, transporter, 100))
	got := s.stored(id)
	s.Equal(order.InTransit, got.Status())
	assigned, ok := got.Transporter()
	s.Require().True(ok)
	s.True(assigned.IsEqual(transporter))

	s.Require().ErrorIs(s.pick(transporter, id, 10), errs.ErrInvalidState)
	s.Require().ErrorIs(s.acceptTransport(buyer, id), errs.ErrUnauthorized)
	s.Require().NoError(s.acceptTransport(transporter, id))

	s.Require().ErrorIs(s.delivery(buyer, id, 123), errs.ErrInvalidState)
	s.Require().ErrorIs(s.pick(transporter, id, 11), errs.ErrInvalidArgument)
	s.Require().ErrorIs(s.pick(stranger, id, 10), errs.ErrUnauthorized)
	s.Require().NoError(s.pick(transporter, id, 10))

	s.Require().ErrorIs(s.delivery(transporter, id, 123, 124), errs.ErrUnauthorized)
	s.Require().NoError(s.delivery(buyer, id, 123, 124))

	got = s.stored(id)
	s.Equal(order.Completed, got.Status())
	s.Equal(int64(10), got.PickedUpQuantity())
	s.Equal([]int64{123, 124}, got.EarTags())

	s.Require().ErrorIs(s.delivery(buyer, id, 125), errs.ErrInvalidState)
	s.Require().ErrorIs(s.confirm(seller, id, true), errs.ErrInvalidState)
}

func (s *ScenarioTestSuite) TestRoleIsChosenOnce() {
	for _, first := range []role.Role{role.Herder, role.Slaughterhouse, role.Transporter} {
		p := kernel.MustNewPrincipal("principal-" + first.String())
		s.Require().NoError(s.choose(p, first))
		for _, second := range []role.Role{role.Herder, role.Slaughterhouse, role.Transporter} {
			s.Require().ErrorIs(s.choose(p, second), errs.ErrAlreadyAssigned)
		}

		a, err := s.store.Roles().Get(context.Background(), p)
		s.Require().NoError(err)
		s.Equal(first, a.Role())
	}
}

func (s *ScenarioTestSuite) TestHerderRegistration() {
	_, err := s.herder(seller)
	s.Require().ErrorIs(err, errs.ErrWrongRole)

	s.Require().NoError(s.choose(seller, role.Transporter))
	_, err = s.herder(seller)
	s.Require().ErrorIs(err, errs.ErrWrongRole)

	s.Require().NoError(s.choose(buyer, role.Herder))
	first, err := s.herder(buyer)
	s.Require().NoError(err)
	_, err = s.herder(buyer)
	s.Require().ErrorIs(err, errs.ErrAlreadyRegistered)

	s.Require().NoError(s.choose(stranger, role.Herder))
	second, err := s.herder(stranger)
	s.Require().NoError(err)
	s.Equal(first+1, second, "a failed registration must not consume an id")
}

func (s *ScenarioTestSuite) TestOrderIDsIncreaseAndMatchNextOrderID() {
	herderID := s.setup()

	for want := order.FirstID; want < order.FirstID+3; want++ {
		id, err := s.order(buyer, herderID, 1)
		s.Require().NoError(err)
		s.Equal(want, id)
	}

	_, err := s.order(buyer, 99, 1)
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)

	next, err := s.store.Sequences().Peek(context.Background(), ports.SequenceOrder, order.FirstID)
	s.Require().NoError(err)
	s.Equal(int64(3), next, "next order id equals the number of orders placed")
}

func (s *ScenarioTestSuite) TestRejectedOrderIsTerminal() {
	herderID := s.setup()
	id, err := s.order(buyer, herderID, 5)
	s.Require().NoError(err)

	s.Require().NoError(s.confirm(seller, id, false))
	s.Equal(order.Rejected, s.stored(id).Status())

	s.Require().ErrorIs(s.confirm(seller, id, true), errs.ErrInvalidState)
	s.Require().ErrorIs(s.requestTransport(buyer, id, transporter, 10), errs.ErrInvalidState)
	s.Require().ErrorIs(s.acceptTransport(transporter, id), errs.ErrInvalidState)
	s.Require().ErrorIs(s.pick(transporter, id, 1), errs.ErrInvalidState)
	s.Require().ErrorIs(s.delivery(buyer, id, 1), errs.ErrInvalidState)
}

func (s *ScenarioTestSuite) TestUnknownOrder() {
	s.setup()

	s.Require().ErrorIs(s.confirm(seller, 42, true), errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.requestTransport(buyer, 42, transporter, 10), errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.acceptTransport(transporter, 42), errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.pick(transporter, 42, 1), errs.ErrObjectNotFound)
	s.Require().ErrorIs(s.delivery(buyer, 42, 1), errs.ErrObjectNotFound)
}

func (s *ScenarioTestSuite) TestTransporterMustBeRegistered() {
	herderID := s.setup()
	id, err := s.order(buyer, herderID, 5)
	s.Require().NoError(err)
	s.Require().NoError(s.confirm(seller, id, true))

	s.Require().ErrorIs(s.requestTransport(buyer, id, stranger, 10), errs.ErrObjectNotFound)
	s.Equal(order.Confirmed, s.stored(id).Status())
}

func (s *ScenarioTestSuite) TestOutboxCollectsEveryTransition() {
	herderID := s.setup()
	id, err := s.order(buyer, herderID, 2)
	s.Require().NoError(err)
	s.Require().NoError(s.confirm(seller, id, true))
	s.Require().ErrorIs(s.confirm(seller, id, true), errs.ErrInvalidState)

	uow := s.store.CreateOutbox()
	s.Require().NoError(uow.Begin(context.Background()))
	defer func() { _ = uow.Rollback(context.Background()) }()
	pending, err := uow.OutboxRepository().GetUnprocessed(context.Background(), 0)
	s.Require().NoError(err)

	types := make([]string, 0, len(pending))
	for _, m := range pending {
		types = append(types, m.EventType)
	}
	s.Equal([]string{string(order.EventOrderPlaced), string(order.EventOrderConfirmed)}, types)
}

func TestScenarioTestSuite(t *testing.T) {
	suite.Run(t, new(ScenarioTestSuite))
}

func TestBuyerNeedsNoRole(t *testing.T) {
	store := memory.NewStore()
	create := store.Create
	ctx := context.Background()

	choose := commands.NewChooseRoleCommandHandler(
		uowFunc[commands.RoleUoW](func() commands.RoleUoW { return create() }))
	cmd, _ := commands.NewChooseRoleCommand(seller, role.Herder)
	require.NoError(t, choose.Handle(ctx, cmd))

	register := commands.NewRegisterHerderCommandHandler(
		uowFunc[commands.RegistrationUoW](func() commands.RegistrationUoW { return create() }))
	herderCmd, _ := commands.NewRegisterHerderCommand(seller, "Location A", 1, 1, participant.AimagStats{})
	herderID, err := register.Handle(ctx, herderCmd)
	require.NoError(t, err)

	place := commands.NewPlaceOrderCommandHandler(
		uowFunc[commands.PlaceOrderUoW](func() commands.PlaceOrderUoW { return create() }))
	for _, p := range []kernel.Principal{buyer, seller} {
		orderCmd, _ := commands.NewPlaceOrderCommand(p, herderID, 1)
		_, err = place.Handle(ctx, orderCmd)
		assert.NoError(t, err, "%s may place orders", p)
	}
}
