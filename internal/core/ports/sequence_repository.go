package ports

import "context"

// Sequence names. Every entity kind draws ids from its own sequence.
const (
	SequenceOrder          = "order"
	SequenceHerder         = "herder"
	SequenceSlaughterhouse = "slaughterhouse"
	SequenceTransporter    = "transporter"
)

// SequenceReader reports the next id without allocating it.
type SequenceReader interface {
	// Peek returns the value Next would return; start when the sequence was never used.
	Peek(ctx context.Context, name string, start int64) (int64, error)
}

// SequenceRepository allocates gap-free sequential ids inside a unit of work.
// An id allocated in a rolled-back transaction is handed out again.
type SequenceRepository interface {
	SequenceReader

	// Next allocates and returns the next value, starting at start.
	Next(ctx context.Context, name string, start int64) (int64, error)
}
