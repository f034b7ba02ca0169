package sync

import "sync/atomic"

// Sequence hands out monotonically increasing request numbers. The zero
// value is ready to use.
type Sequence struct {
	value atomic.Uint64
}

// Next returns the next number, starting at 1.
func (s *Sequence) Next() uint64 {
	return s.value.Add(1)
}

// Current returns the last number handed out.
func (s *Sequence) Current() uint64 {
	return s.value.Load()
}
