package outboxrepo

import (
	"time"

	"supplychain/internal/core/ports"

	"github.com/google/uuid"
)

// OutboxMessageDTO is one pending or published event. Position preserves commit order
// for the relay.
type OutboxMessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Position    int64      `gorm:"autoIncrement;uniqueIndex"`
	EventType   string     `gorm:"size:128;not null"`
	OrderID     int64      `gorm:"not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null"`
	ProcessedAt *time.Time `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

func fromDomain(m ports.OutboxMessage) OutboxMessageDTO {
	return OutboxMessageDTO{
		ID:          m.ID,
		EventType:   m.EventType,
		OrderID:     m.OrderID,
		Payload:     m.Payload,
		OccurredAt:  m.OccurredAt,
		ProcessedAt: m.ProcessedAt,
	}
}

func toDomain(dto OutboxMessageDTO) ports.OutboxMessage {
	return ports.OutboxMessage{
		ID:          dto.ID,
		EventType:   dto.EventType,
		OrderID:     dto.OrderID,
		Payload:     dto.Payload,
		OccurredAt:  dto.OccurredAt,
		ProcessedAt: dto.ProcessedAt,
	}
}
