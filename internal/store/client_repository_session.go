package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/doc-query/internal/logger"
	"github.com/MKhiriev/doc-query/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository returns the SQLite implementation of
// [SessionRepository].
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) GetCredential(ctx context.Context) (models.Credential, error) {
	value, err := r.getValue(ctx, credentialKey)
	if err != nil {
		return "", err
	}

	return models.Credential(value), nil
}

func (r *sessionRepository) GetProfile(ctx context.Context) (models.UserProfile, error) {
	value, err := r.getValue(ctx, profileKey)
	if err != nil {
		return models.UserProfile{}, err
	}

	var profile models.UserProfile
	if err = json.Unmarshal([]byte(value), &profile); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.GetProfile").Msg("stored profile is not valid json")
		return models.UserProfile{}, fmt.Errorf("%w: %w", ErrCorruptedProfile, err)
	}

	return profile, nil
}

func (r *sessionRepository) SaveSession(ctx context.Context, cred models.Credential, profile models.UserProfile) error {
	return r.db.inTx(ctx, func(tx *sql.Tx) error {
		if err := r.upsert(ctx, tx, credentialKey, cred.String()); err != nil {
			return err
		}

		if profile.IsEmpty() {
			return r.delete(ctx, tx, profileKey)
		}

		encoded, err := json.Marshal(profile)
		if err != nil {
			return fmt.Errorf("error encoding profile: %w", err)
		}

		return r.upsert(ctx, tx, profileKey, string(encoded))
	})
}

func (r *sessionRepository) SaveProfile(ctx context.Context, profile models.UserProfile) error {
	encoded, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("error encoding profile: %w", err)
	}

	return r.upsert(ctx, r.db, profileKey, string(encoded))
}

func (r *sessionRepository) ClearSession(ctx context.Context) error {
	// a single DELETE keeps both keys consistent
	return r.delete(ctx, r.db, credentialKey, profileKey)
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (r *sessionRepository) getValue(ctx context.Context, key string) (string, error) {
	query, args, err := buildSelectStateQuery(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.getValue").Str("key", key).Msg("failed to read client state")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, nil
}

func (r *sessionRepository) upsert(ctx context.Context, ex execer, key, value string) error {
	query, args, err := buildUpsertStateQuery(key, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.upsert").Str("key", key).Msg("failed to write client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) delete(ctx context.Context, ex execer, keys ...string) error {
	query, args, err := buildDeleteStateQuery(keys...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = ex.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "sessionRepository.delete").Strs("keys", keys).Msg("failed to delete client state")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
