// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/doc-query/internal/logger"
)

func TestScheduler_After_RunsOnce(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	done := make(chan struct{})
	var calls atomic.Int32
	s.After(10*time.Millisecond, func(ctx context.Context) {
		calls.Add(1)
		close(done)
	})

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("deferred call did not run")
	}

	// give a duplicate run a chance to show up
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestScheduler_After_RespectsDelay(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	start := time.Now()
	ran := make(chan time.Duration, 1)
	s.After(50*time.Millisecond, func(context.Context) {
		ran <- time.Since(start)
	})

	select {
	case elapsed := <-ran:
		assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
	case <-time.After(time.Second):
		t.Fatal("deferred call did not run")
	}
}

func TestScheduler_After_ZeroDelay(t *testing.T) {
	s := NewScheduler(logger.Nop())
	defer s.Stop()

	ran := make(chan struct{})
	s.After(0, func(context.Context) { close(ran) })

	select {
	case <-ran:
	case <-time.After(time.Second):
		t.Fatal("zero delay call did not run")
	}
}

func TestScheduler_Stop_CancelsPending(t *testing.T) {
	s := NewScheduler(logger.Nop())

	var calls atomic.Int32
	s.After(time.Hour, func(context.Context) { calls.Add(1) })

	stopped := make(chan struct{})
	go func() {
		s.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
	case <-time.After(time.Second):
		t.Fatal("Stop blocked on a pending timer")
	}
	assert.Zero(t, calls.Load())
}

func TestScheduler_Stop_WaitsForRunning(t *testing.T) {
	s := NewScheduler(logger.Nop())

	started := make(chan struct{})
	var finished atomic.Bool
	s.After(0, func(ctx context.Context) {
		close(started)
		<-ctx.Done()
		time.Sleep(20 * time.Millisecond)
		finished.Store(true)
	})

	<-started
	s.Stop()
	assert.True(t, finished.Load())
}

func TestScheduler_AfterStop_Dropped(t *testing.T) {
	s := NewScheduler(logger.Nop())
	s.Stop()
	s.Stop()

	var calls atomic.Int32
	s.After(0, func(context.Context) { calls.Add(1) })
	time.Sleep(20 * time.Millisecond)
	assert.Zero(t, calls.Load())
}

func TestWorkers_Shutdown(t *testing.T) {
	w := NewWorkers(logger.Nop())
	require.NotNil(t, w.Scheduler)

	var calls atomic.Int32
	w.Scheduler.After(time.Hour, func(context.Context) { calls.Add(1) })
	w.Shutdown()
	assert.Zero(t, calls.Load())

	// nil receivers are tolerated
	var nilWorkers *Workers
	nilWorkers.Shutdown()
	(&Workers{}).Shutdown()
}
