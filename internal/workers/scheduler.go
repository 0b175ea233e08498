package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/doc-query/internal/logger"
)

type deferredScheduler struct {
	logger *logger.Logger

	mu      sync.Mutex
	ctx     context.Context
	cancel  context.CancelFunc
	stopped bool
	wg      sync.WaitGroup
}

// NewScheduler returns a [Scheduler] whose calls live until Stop.
func NewScheduler(logger *logger.Logger) Scheduler {
	ctx, cancel := context.WithCancel(context.Background())
	return &deferredScheduler{logger: logger, ctx: ctx, cancel: cancel}
}

// After implements [Scheduler]. Each call gets its own timer goroutine.
func (s *deferredScheduler) After(delay time.Duration, fn func(ctx context.Context)) {
	s.mu.Lock()
	if s.stopped {
		s.mu.Unlock()
		s.logger.Debug().Str("func", "deferredScheduler.After").Msg("scheduler stopped, call dropped")
		return
	}
	ctx := s.ctx
	s.wg.Add(1)
	s.mu.Unlock()

	go func() {
		defer s.wg.Done()

		if delay > 0 {
			t := time.NewTimer(delay)
			defer t.Stop()

			select {
			case <-ctx.Done():
				return
			case <-t.C:
			}
		}

		if ctx.Err() != nil {
			return
		}
		fn(ctx)
	}()
}

// Stop implements [Scheduler]. It is safe to call more than once.
func (s *deferredScheduler) Stop() {
	s.mu.Lock()
	s.stopped = true
	s.mu.Unlock()

	s.cancel()
	s.wg.Wait()
}
