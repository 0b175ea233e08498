package session

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/internal/store"
	"github.com/MKhiriev/doc-query/models"
)

type storedSession struct {
	repo   store.SessionRepository
	logger *logger.Logger
}

// NewSession returns a [Session] persisted in repo.
func NewSession(repo store.SessionRepository, logger *logger.Logger) Session {
	return &storedSession{repo: repo, logger: logger}
}

func (s *storedSession) Get(ctx context.Context) (models.Credential, bool, error) {
	cred, err := s.repo.GetCredential(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}
	if cred.IsEmpty() {
		return "", false, nil
	}

	return cred, true, nil
}

func (s *storedSession) Profile(ctx context.Context) (models.UserProfile, bool, error) {
	profile, err := s.repo.GetProfile(ctx)
	switch {
	case errors.Is(err, store.ErrLocalSessionNotFound):
		return models.UserProfile{}, false, nil
	case errors.Is(err, store.ErrCorruptedProfile):
		s.logger.Warn().Err(err).Str("func", "storedSession.Profile").Msg("ignoring unreadable profile")
		return models.UserProfile{}, false, nil
	case err != nil:
		return models.UserProfile{}, false, fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	return profile, !profile.IsEmpty(), nil
}

func (s *storedSession) Set(ctx context.Context, cred models.Credential, profile models.UserProfile) error {
	if cred.IsEmpty() {
		return ErrEmptyCredential
	}
	if err := s.repo.SaveSession(ctx, cred, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	s.logger.Info().Str("func", "storedSession.Set").Bool("has_profile", !profile.IsEmpty()).Msg("credential stored")
	return nil
}

func (s *storedSession) SetProfile(ctx context.Context, profile models.UserProfile) error {
	if err := s.repo.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}
	return nil
}

func (s *storedSession) Clear(ctx context.Context) error {
	if err := s.repo.ClearSession(ctx); err != nil {
		return fmt.Errorf("%w: %w", ErrSessionStorage, err)
	}

	s.logger.Info().Str("func", "storedSession.Clear").Msg("credential cleared")
	return nil
}
