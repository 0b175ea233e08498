package config

import "errors"

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid. The validator details are
// joined to the sentinel, so callers should match with [errors.Is].
var (
	// ErrInvalidAdapterConfigs indicates invalid backend adapter settings
	// (for example, a malformed base URL or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates invalid client storage settings
	// (for example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidUploadConfigs indicates invalid upload limits.
	ErrInvalidUploadConfigs = errors.New("invalid upload configuration")
	// ErrInvalidSessionConfigs indicates invalid login handoff settings
	// (for example, identical login and main paths).
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidWorkerConfigs indicates invalid deferred call settings
	// (for example, a negative delay).
	ErrInvalidWorkerConfigs = errors.New("invalid worker configuration")
)
