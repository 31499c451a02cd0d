package kafka_test

import (
	"context"
	"errors"
	"testing"
	"time"

	supplykafka "supplychain/internal/adapters/out/kafka"
	"supplychain/internal/core/ports"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockWriter struct {
	mock.Mock
}

func (m *MockWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	args := m.Called(ctx, msgs)
	return args.Error(0)
}

func (m *MockWriter) Close() error {
	return m.Called().Error(0)
}

func TestPublisher_Publish(t *testing.T) {
	ctx := t.Context()
	occurred := time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)
	msg := ports.OutboxMessage{
		ID:         uuid.MustParse("7f0e3c43-5a5f-4c39-9a53-4d1fb1d7d1a2"),
		EventType:  "OrderPlaced",
		OrderID:    12,
		Payload:    []byte(`{"event_type":"OrderPlaced"}`),
		OccurredAt: occurred,
	}

	w := new(MockWriter)
	w.On("WriteMessages", ctx, []kafka.Message{{
		Key:   []byte("12"),
		Value: msg.Payload,
		Time:  occurred,
		Headers: []kafka.Header{
			{Key: supplykafka.HeaderEventType, Value: []byte("OrderPlaced")},
			{Key: supplykafka.HeaderEventID, Value: []byte("7f0e3c43-5a5f-4c39-9a53-4d1fb1d7d1a2")},
		},
	}}).Return(nil).Once()

	err := supplykafka.NewPublisherWithWriter(w).Publish(ctx, msg)

	require.NoError(t, err)
	w.AssertExpectations(t)
}

func TestPublisher_Publish_Empty(t *testing.T) {
	w := new(MockWriter)

	require.NoError(t, supplykafka.NewPublisherWithWriter(w).Publish(t.Context()))
	w.AssertNotCalled(t, "WriteMessages", mock.Anything, mock.Anything)
}

func TestPublisher_Publish_WriterError(t *testing.T) {
	ctx := t.Context()
	w := new(MockWriter)
	w.On("WriteMessages", ctx, mock.Anything).Return(errors.New("broker unavailable")).Once()

	err := supplykafka.NewPublisherWithWriter(w).Publish(ctx,
		ports.OutboxMessage{ID: uuid.New(), OrderID: 1}, ports.OutboxMessage{ID: uuid.New(), OrderID: 2})

	require.EqualError(t, err, "broker unavailable")
	w.AssertExpectations(t)
}

func TestPublisher_Close(t *testing.T) {
	w := new(MockWriter)
	w.On("Close").Return(nil).Once()

	assert.NoError(t, supplykafka.NewPublisherWithWriter(w).Close())
	w.AssertExpectations(t)
}

func TestNewPublisher_FlushesBatchesQuickly(t *testing.T) {
	p := supplykafka.NewPublisher([]string{"localhost:9092"}, "order-events")

	w := p.Writer()
	require.NotNil(t, w)
	assert.Equal(t, "order-events", w.Topic)
	assert.Equal(t, 10*time.Millisecond, w.BatchTimeout)
	assert.Equal(t, 100, w.BatchSize)
	assert.Equal(t, kafka.RequireAll, w.RequiredAcks)
}
