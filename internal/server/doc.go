// Package server runs the loopback handoff surface.
//
// It owns the listener lifecycle: binding the callback address, serving in
// the background and graceful shutdown.
package server
