package usecase

import (
	"stock_dashboard/internal/feature/forecast/domain"
)

// Status is the tag of a RequestState.
type Status int

const (
	StatusIdle Status = iota
	StatusLoading
	StatusSuccess
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusLoading:
		return "loading"
	case StatusSuccess:
		return "success"
	case StatusFailed:
		return "failed"
	default:
		return "idle"
	}
}

// RequestState is the observable state of one slot. Data is meaningful only
// when Status is StatusSuccess and Reason only when it is StatusFailed.
type RequestState[T any] struct {
	Status     Status
	Data       T
	Reason     string
	Generation uint64
}

// slot owns one RequestState and its generation counter. Callers hold the
// controller lock for every method.
type slot[T any] struct {
	name     string
	fallback string
	state    RequestState[T]
}

func newSlot[T any](name, fallback string) slot[T] {
	return slot[T]{name: name, fallback: fallback}
}

// issue moves the slot to Loading under a new generation, dropping the
// previous payload, and returns that generation.
func (s *slot[T]) issue() uint64 {
	gen := s.state.Generation + 1
	s.state = RequestState[T]{Status: StatusLoading, Generation: gen}
	return gen
}

// reset returns the slot to Idle. The generation still advances so that a
// response already in flight is treated as stale.
func (s *slot[T]) reset() {
	s.state = RequestState[T]{Status: StatusIdle, Generation: s.state.Generation + 1}
}

// settle applies a response for gen. It reports false, leaving the slot
// untouched, when gen is no longer current.
func (s *slot[T]) settle(gen uint64, data T, err error) bool {
	if gen != s.state.Generation || s.state.Status != StatusLoading {
		return false
	}
	if err != nil {
		s.state = RequestState[T]{Status: StatusFailed, Reason: domain.Reason(err, s.fallback), Generation: gen}
		return true
	}
	s.state = RequestState[T]{Status: StatusSuccess, Data: data, Generation: gen}
	return true
}

func (s *slot[T]) loading() bool { return s.state.Status == StatusLoading }
