package store

import (
	"context"

	"github.com/MKhiriev/doc-query/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository persists the signed-in user's credential and display
// profile across client restarts.
//
// Reads of a missing entry return [ErrLocalSessionNotFound]. Writes that
// touch both entries are applied atomically, so a reader never observes a
// credential paired with the profile of a previous credential.
type SessionRepository interface {
	// GetCredential returns the stored bearer token.
	GetCredential(ctx context.Context) (models.Credential, error)

	// GetProfile returns the stored display profile.
	GetProfile(ctx context.Context) (models.UserProfile, error)

	// SaveSession stores cred and replaces the profile in one transaction.
	// An empty profile removes the stored one.
	SaveSession(ctx context.Context, cred models.Credential, profile models.UserProfile) error

	// SaveProfile stores profile without touching the credential.
	SaveProfile(ctx context.Context, profile models.UserProfile) error

	// ClearSession removes both the credential and the profile.
	ClearSession(ctx context.Context) error
}
