package server

import "context"

// Server is the lifecycle of the handoff surface.
type Server interface {
	// Start binds the callback address and serves visits in the background.
	// It returns once the listener is bound.
	Start() error

	// Addr returns the bound address, or an empty string before Start.
	Addr() string

	// Shutdown stops accepting visits and waits for running ones until ctx
	// is done.
	Shutdown(ctx context.Context) error
}
