package memory

import (
	"context"
	"time"
)

func (s *Store) SetClock(now func() time.Time) {
	s.now = now
}

// OutboxLen reports how many messages wait in the outbox.
func (s *Store) OutboxLen() int {
	_ = s.outbox.slot.acquire(context.Background())
	defer s.outbox.slot.release()
	return len(s.outbox.messages)
}
