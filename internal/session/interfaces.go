package session

import (
	"context"

	"github.com/MKhiriev/doc-query/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// Session is the credential holder shared by all workflows.
//
// A missing credential is not an error: Get reports it with ok == false.
// Errors are reserved for storage failures.
type Session interface {
	// Get returns the stored credential and whether one is present.
	Get(ctx context.Context) (cred models.Credential, ok bool, err error)

	// Profile returns the cached display profile and whether one is present.
	// A profile that cannot be read back is reported as absent.
	Profile(ctx context.Context) (profile models.UserProfile, ok bool, err error)

	// Set replaces the credential and its profile together.
	Set(ctx context.Context, cred models.Credential, profile models.UserProfile) error

	// SetProfile replaces only the cached profile.
	SetProfile(ctx context.Context, profile models.UserProfile) error

	// Clear removes the credential and the profile.
	Clear(ctx context.Context) error
}
