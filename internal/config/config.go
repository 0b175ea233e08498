// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// doc-query client. It aggregates all sub-configurations and is populated by
// merging values from a .env file, environment variables, command-line flags,
// and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Adapter holds the backend base URL and outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Upload holds the limits enforced before any file leaves the machine.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Session holds the login handoff surface settings.
	Session Session `envPrefix:"SESSION_"`

	// Storage holds configuration for the local token store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Workers holds the delays of deferred one-shot calls.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Adapter holds configuration of the backend HTTP integration.
type Adapter struct {
	// HTTPAddress is the backend base URL (e.g. "http://127.0.0.1:8000").
	// A bare host:port is accepted and prefixed with http://.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request (e.g. "30s", "2m").
	// Document processing on upload can be slow, so keep it generous.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Upload holds client-side upload limits.
type Upload struct {
	// MaxFileSizeBytes is the per-file size ceiling in bytes.
	// Env: UPLOAD_MAX_FILE_SIZE
	MaxFileSizeBytes int64 `env:"MAX_FILE_SIZE"`

	// MaxFileCount is the maximum number of files per upload. A value of 1
	// selects the single-file wire variant.
	// Env: UPLOAD_MAX_FILE_COUNT
	MaxFileCount int `env:"MAX_FILE_COUNT"`
}

// Session holds the login handoff settings.
type Session struct {
	// LoginPath is the path of the login landing surface (e.g. "/index.html").
	// Env: SESSION_LOGIN_PATH
	LoginPath string `env:"LOGIN_PATH"`

	// MainPath is the path of the main application surface (e.g. "/app.html").
	// The backend redirects here with ?token= or ?error= after sign-in.
	// Env: SESSION_MAIN_PATH
	MainPath string `env:"MAIN_PATH"`

	// CallbackAddress is the loopback host:port the handoff surface listens on.
	// Env: SESSION_CALLBACK_ADDRESS
	CallbackAddress string `env:"CALLBACK_ADDRESS"`

	// LoginEntryURL is the backend's external sign-in entry point. Defaults to
	// <Adapter.HTTPAddress>/auth/google/login.
	// Env: SESSION_LOGIN_ENTRY
	LoginEntryURL string `env:"LOGIN_ENTRY"`
}

// Storage groups the configuration for all storage backends used by the
// client.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local SQLite database.
type DB struct {
	// DSN is the SQLite file path (e.g. "doc-query.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Workers holds configuration of deferred one-shot calls.
type Workers struct {
	// RefreshDelay is how long after a successful delete the document list
	// is reloaded.
	// Env: WORKERS_REFRESH_DELAY
	RefreshDelay time.Duration `env:"REFRESH_DELAY"`

	// RedirectDelay is how long a "not authenticated" message stays visible
	// before the client returns to the login surface.
	// Env: WORKERS_REDIRECT_DELAY
	RedirectDelay time.Duration `env:"REDIRECT_DELAY"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file and environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Fields left empty by every source receive the defaults from
// [defaultStructuredConfig].
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
