package calculator

import (
	"go.uber.org/atomic"
)

// StatusStore keeps the latest cycle result for concurrent readers
type StatusStore struct {
	last atomic.Value // *Result
}

func NewStatusStore() *StatusStore {
	return &StatusStore{}
}

func (s *StatusStore) Store(res *Result) {
	s.last.Store(res)
}

// Last returns nil until the first cycle is completed
func (s *StatusStore) Last() *Result {
	v := s.last.Load()
	if v == nil {
		return nil
	}
	return v.(*Result)
}
