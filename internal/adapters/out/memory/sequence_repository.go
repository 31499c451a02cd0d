package memory

import "context"

type sequenceRepository struct {
	st *state
}

func (r *sequenceRepository) Next(_ context.Context, name string, start int64) (int64, error) {
	if r.st == nil {
		return 0, ErrNoTransaction
	}
	v := peek(r.st, name, start)
	r.st.sequences[name] = v + 1
	return v, nil
}

func (r *sequenceRepository) Peek(_ context.Context, name string, start int64) (int64, error) {
	if r.st == nil {
		return 0, ErrNoTransaction
	}
	return peek(r.st, name, start), nil
}

func peek(st *state, name string, start int64) int64 {
	if v, ok := st.sequences[name]; ok {
		return v
	}
	return start
}

type sequenceReader struct{ s *Store }

func (r sequenceReader) Peek(_ context.Context, name string, start int64) (int64, error) {
	return read(r.s, func(st *state) (int64, error) { return peek(st, name, start), nil })
}
