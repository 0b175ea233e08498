// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/doc-query/internal/session"
	"github.com/MKhiriev/doc-query/internal/tui"
	"github.com/MKhiriev/doc-query/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit or until ctx
	// is cancelled.
	Run(ctx context.Context) error
}

// Handoff delivers the outcomes of login handoff visits.
type Handoff interface {
	Outcomes() <-chan session.Outcome
}

// MainLoop runs the workflows for a signed-in user.
type MainLoop interface {
	MainLoop(ctx context.Context, profile models.UserProfile) (tui.Result, error)
}
