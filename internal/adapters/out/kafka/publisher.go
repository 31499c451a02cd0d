// Package kafka publishes outbox messages to a Kafka topic.
package kafka

import (
	"context"
	"strconv"
	"time"

	"supplychain/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Header names carried by every published message.
const (
	HeaderEventType = "event_type"
	HeaderEventID   = "event_id"
)

// A relay batch is written in one call; the writer flushes it after at most
// batchTimeout instead of kafka-go's one second default.
const (
	batchSize    = 100
	batchTimeout = 10 * time.Millisecond
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher writes outbox messages synchronously so the relay only marks them
// processed once every broker replica has them. Messages are keyed by order id and
// hash-balanced, which keeps the events of one order on one partition in order.
type Publisher struct {
	w messageWriter
}

func NewPublisher(brokers []string, topic string) *Publisher {
	return &Publisher{
		w: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Topic:                  topic,
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireAll,
			BatchSize:              batchSize,
			BatchTimeout:           batchTimeout,
			AllowAutoTopicCreation: true,
		},
	}
}

func (p *Publisher) Publish(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	batch := make([]kafka.Message, 0, len(messages))
	for _, m := range messages {
		batch = append(batch, toKafkaMessage(m))
	}
	return p.w.WriteMessages(ctx, batch...)
}

func (p *Publisher) Close() error {
	return p.w.Close()
}

func toKafkaMessage(m ports.OutboxMessage) kafka.Message {
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(m.OrderID, 10)),
		Value: m.Payload,
		Time:  m.OccurredAt,
		Headers: []kafka.Header{
			{Key: HeaderEventType, Value: []byte(m.EventType)},
			{Key: HeaderEventID, Value: []byte(m.ID.String())},
		},
	}
}
