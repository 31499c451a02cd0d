package commands_test

import (
	"errors"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/domain/model/order"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(buyer, 1, 10)
	require.NoError(t, err)

	participants := new(MockParticipantRepository)
	sequences := new(MockSequenceRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participants).Once(),
		participants.On("GetHerder", ctx, int64(1)).Return(mustHerder(1, seller), nil).Once(),
		uow.On("SequenceRepository").Return(sequences).Once(),
		sequences.On("Next", ctx, ports.SequenceOrder, order.FirstID).Return(int64(0), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.MatchedBy(func(o *order.Order) bool {
			return o.ID() == 0 && o.HerderID() == 1 && o.Seller().IsEqual(seller) &&
				o.Buyer().IsEqual(buyer) && o.Quantity() == 10 && o.Status() == order.Placed
		})).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := factoryOf[commands.PlaceOrderUoW](uow)

	h := commands.NewPlaceOrderCommandHandler(factory)
	id, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, int64(0), id)
	participants.AssertExpectations(t)
	sequences.AssertExpectations(t)
	orders.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_HerderNotFound(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(buyer, 42, 10)

	participants := new(MockParticipantRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participants).Once(),
		participants.On("GetHerder", ctx, int64(42)).Return(nil, errs.NewObjectNotFoundError("herder", 42)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factoryOf[commands.PlaceOrderUoW](uow))
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "SequenceRepository")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(buyer, 1, 10)

	participants := new(MockParticipantRepository)
	sequences := new(MockSequenceRepository)
	orders := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParticipantRepository").Return(participants).Once(),
		participants.On("GetHerder", ctx, int64(1)).Return(mustHerder(1, seller), nil).Once(),
		uow.On("SequenceRepository").Return(sequences).Once(),
		sequences.On("Next", ctx, ports.SequenceOrder, order.FirstID).Return(int64(4), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPlaceOrderCommandHandler(factoryOf[commands.PlaceOrderUoW](uow))
	id, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "add error")
	assert.Zero(t, id)
	uow.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPlaceOrderCommand(buyer, 1, 10)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

	h := commands.NewPlaceOrderCommandHandler(factoryOf[commands.PlaceOrderUoW](uow))
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "begin error")
}

func TestNewPlaceOrderCommand(t *testing.T) {
	t.Run("valid input", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(buyer, 1, 10)

		require.NoError(t, err)
		assert.True(t, buyer.IsEqual(cmd.Actor()))
		assert.Equal(t, int64(1), cmd.HerderID())
		assert.Equal(t, int64(10), cmd.Quantity())
	})

	t.Run("non-positive quantity", func(t *testing.T) {
		for _, q := range []int64{0, -5} {
			_, err := commands.NewPlaceOrderCommand(buyer, 1, q)
			require.ErrorIs(t, err, errs.ErrInvalidArgument)
		}
	})

	t.Run("missing actor", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.Principal{}, 1, 10)
		require.ErrorIs(t, err, kernel.ErrPrincipalIsNotConstructed)
	})

	t.Run("zero value does not validate", func(t *testing.T) {
		require.ErrorIs(t, commands.PlaceOrderCommand{}.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
