package commands_test

import (
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func outboxMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for i := range n {
		messages = append(messages, ports.OutboxMessage{
			ID:         uuid.New(),
			EventType:  "OrderPlaced",
			OrderID:    int64(i),
			Payload:    []byte(`{}`),
			OccurredAt: time.Now(),
		})
	}
	return messages
}

func TestPublishOutboxCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPublishOutboxCommand(10)
	require.NoError(t, err)
	messages := outboxMessages(2)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	fetch := new(MockUoW)
	mark := new(MockUoW)
	mock.InOrder(
		fetch.On("Begin", ctx).Return(nil).Once(),
		fetch.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once(),
		fetch.On("Commit", ctx).Return(nil).Once(),
		fetch.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, messages).Return(nil).Once(),
		mark.On("Begin", ctx).Return(nil).Once(),
		mark.On("OutboxRepository").Return(repo).Once(),
		repo.On("MarkProcessed", ctx, []uuid.UUID{messages[0].ID, messages[1].ID}, mock.AnythingOfType("time.Time")).
			Return(nil).Once(),
		mark.On("Commit", ctx).Return(nil).Once(),
		mark.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewPublishOutboxCommandHandler(factoryOf[commands.OutboxUoW](fetch, mark), publisher)
	published, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 2, published)
	repo.AssertExpectations(t)
	publisher.AssertExpectations(t)
	fetch.AssertExpectations(t)
	mark.AssertExpectations(t)
}

func TestPublishOutboxCommandHandler_Handle_NothingPending(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPublishOutboxCommand(10)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	fetch := new(MockUoW)
	mock.InOrder(
		fetch.On("Begin", ctx).Return(nil).Once(),
		fetch.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnprocessed", ctx, 10).Return([]ports.OutboxMessage{}, nil).Once(),
		fetch.On("Commit", ctx).Return(nil).Once(),
		fetch.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := factoryOf[commands.OutboxUoW](fetch)
	h := commands.NewPublishOutboxCommandHandler(factory, publisher)
	published, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Zero(t, published)
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestPublishOutboxCommandHandler_Handle_PublishError(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPublishOutboxCommand(10)
	messages := outboxMessages(1)

	repo := new(MockOutboxRepository)
	publisher := new(MockEventPublisher)
	fetch := new(MockUoW)
	mock.InOrder(
		fetch.On("Begin", ctx).Return(nil).Once(),
		fetch.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once(),
		fetch.On("Commit", ctx).Return(nil).Once(),
		fetch.On("Rollback", ctx).Return(nil).Once(),
		publisher.On("Publish", ctx, messages).Return(errors.New("broker down")).Once(),
	)

	factory := factoryOf[commands.OutboxUoW](fetch)
	h := commands.NewPublishOutboxCommandHandler(factory, publisher)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "broker down")
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything, mock.Anything)
	factory.AssertNumberOfCalls(t, "Create", 1)
}

func TestPublishOutboxCommandHandler_Handle_PublishesWithoutOpenTransaction(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewPublishOutboxCommand(10)
	messages := outboxMessages(1)

	repo := new(MockOutboxRepository)
	fetch := new(MockUoW)
	mark := new(MockUoW)
	fetch.On("Begin", ctx).Return(nil).Once()
	fetch.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once()
	fetch.On("Commit", ctx).Return(nil).Once()
	fetch.On("Rollback", ctx).Return(nil).Once()

	publisher := new(MockEventPublisher)
	publisher.On("Publish", ctx, messages).Return(nil).Once().Run(func(mock.Arguments) {
		fetch.AssertCalled(t, "Commit", ctx)
		mark.AssertNotCalled(t, "Begin", mock.Anything)
	})

	mark.On("Begin", ctx).Return(nil).Once()
	mark.On("OutboxRepository").Return(repo).Once()
	repo.On("MarkProcessed", ctx, []uuid.UUID{messages[0].ID}, mock.AnythingOfType("time.Time")).Return(nil).Once()
	mark.On("Commit", ctx).Return(errors.New("commit failed")).Once()
	mark.On("Rollback", ctx).Return(nil).Once()

	h := commands.NewPublishOutboxCommandHandler(factoryOf[commands.OutboxUoW](fetch, mark), publisher)
	_, err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "commit failed")
	publisher.AssertExpectations(t)
	mark.AssertExpectations(t)
}

func TestNewPublishOutboxCommand(t *testing.T) {
	cmd, err := commands.NewPublishOutboxCommand(5)
	require.NoError(t, err)
	assert.Equal(t, 5, cmd.BatchSize())

	_, err = commands.NewPublishOutboxCommand(0)
	require.Error(t, err)
}
