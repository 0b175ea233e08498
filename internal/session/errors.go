package session

import "errors"

var (
	// ErrEmptyCredential is returned by Set when the credential is blank.
	ErrEmptyCredential = errors.New("credential is empty")

	// ErrSessionStorage wraps failures of the underlying token store.
	ErrSessionStorage = errors.New("session storage failure")
)
