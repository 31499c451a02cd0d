package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewPublisherWithWriter(w MessageWriter) *Publisher {
	return &Publisher{w: w}
}

func (p *Publisher) Writer() *kafka.Writer {
	w, _ := p.w.(*kafka.Writer)
	return w
}
