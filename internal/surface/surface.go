// Package surface holds the per-workflow display state.
//
// Every workflow action takes a ticket with [Surface.Begin] before it starts
// and publishes its outcome with that ticket. Only the most recently issued
// ticket may change what is displayed, so a slow response that finishes after
// a newer action began is discarded instead of overwriting the newer state.
package surface

import "sync"

// Ticket identifies one workflow action. Tickets issued by the same
// [Surface] increase monotonically.
type Ticket uint64

// Surface is the display state of one workflow. It is safe for concurrent
// use.
type Surface[T any] struct {
	mu          sync.Mutex
	latest      Ticket
	current     T
	subscribers []func(T)
}

// New returns a surface displaying initial.
func New[T any](initial T) *Surface[T] {
	return &Surface[T]{current: initial}
}

// Begin issues a new ticket. Any ticket issued earlier becomes stale.
func (s *Surface[T]) Begin() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.latest++
	return s.latest
}

// Publish replaces the displayed value with v if t is still the latest
// ticket and notifies subscribers. It reports whether v was applied.
//
// A ticket may publish more than once (an in-progress state followed by the
// result).
func (s *Surface[T]) Publish(t Ticket, v T) bool {
	s.mu.Lock()
	if t != s.latest {
		s.mu.Unlock()
		return false
	}
	s.current = v
	subs := make([]func(T), len(s.subscribers))
	copy(subs, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(v)
	}
	return true
}

// Set begins a new action and publishes v for it in one step.
func (s *Surface[T]) Set(v T) Ticket {
	t := s.Begin()
	s.Publish(t, v)
	return t
}

// Current returns the displayed value.
func (s *Surface[T]) Current() T {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.current
}

// Latest returns the most recently issued ticket, or zero if none.
func (s *Surface[T]) Latest() Ticket {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.latest
}

// OnChange registers fn to be called with every applied value. fn is called
// outside the surface lock on the publishing goroutine.
func (s *Surface[T]) OnChange(fn func(T)) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.subscribers = append(s.subscribers, fn)
}
