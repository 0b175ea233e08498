// Package workers runs the client's deferred one-shot calls: the document
// list reload after a delete and the login redirect after a missing
// credential. There is no recurring work.
package workers

import (
	"context"
	"time"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/workers_mock.go -package=mock

// Scheduler runs functions once after a delay.
//
// The context passed to fn is owned by the scheduler, not by the caller of
// After, and is cancelled by Stop.
type Scheduler interface {
	// After runs fn once delay has elapsed. A non-positive delay runs fn
	// as soon as possible. Calls made after Stop are dropped.
	After(delay time.Duration, fn func(ctx context.Context))

	// Stop cancels pending calls and waits for running ones to return.
	Stop()
}
