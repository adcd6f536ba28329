package counter

import "sync"

// Sequence hands out increasing ids starting from 1, never reused
type Sequence struct {
	last uint64
	mu   sync.Mutex
}

func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.last++
	return s.last
}

// Last returns the latest id handed out, 0 if none
func (s *Sequence) Last() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.last
}
