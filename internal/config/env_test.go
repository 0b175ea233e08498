// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	envVars := map[string]string{
		"CONFIG": "/path/to/config.json",

		"ADAPTER_ADDRESS":         "http://127.0.0.1:9000",
		"ADAPTER_REQUEST_TIMEOUT": "45s",

		"UPLOAD_MAX_FILE_SIZE":  "1048576",
		"UPLOAD_MAX_FILE_COUNT": "5",

		"SESSION_LOGIN_PATH":       "/login.html",
		"SESSION_MAIN_PATH":        "/main.html",
		"SESSION_CALLBACK_ADDRESS": "127.0.0.1:9999",
		"SESSION_LOGIN_ENTRY":      "http://127.0.0.1:9000/auth/google/login",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DATABASE_URI": "/tmp/state.db",

		"WORKERS_REFRESH_DELAY":  "250ms",
		"WORKERS_REDIRECT_DELAY": "3s",
	}
	setEnvVars(t, envVars)

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "http://127.0.0.1:9000", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, int64(1048576), cfg.Upload.MaxFileSizeBytes)
	assert.Equal(t, 5, cfg.Upload.MaxFileCount)

	assert.Equal(t, "/login.html", cfg.Session.LoginPath)
	assert.Equal(t, "/main.html", cfg.Session.MainPath)
	assert.Equal(t, "127.0.0.1:9999", cfg.Session.CallbackAddress)
	assert.Equal(t, "http://127.0.0.1:9000/auth/google/login", cfg.Session.LoginEntryURL)

	assert.Equal(t, "/tmp/state.db", cfg.Storage.DB.DSN)

	assert.Equal(t, 250*time.Millisecond, cfg.Workers.RefreshDelay)
	assert.Equal(t, 3*time.Second, cfg.Workers.RedirectDelay)
}

func TestParseEnv_PartialFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_ADDRESS": "backend:8000",
	})

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "backend:8000", cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Zero(t, cfg.Upload.MaxFileCount)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"WORKERS_REFRESH_DELAY": "soon",
	})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestLoadDotEnv_ExportsMissingVariables(t *testing.T) {
	clearEnvVars(t)
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_MAIN_PATH=/from-dotenv\n"), 0o600))
	t.Cleanup(func() { _ = os.Unsetenv("SESSION_MAIN_PATH") })

	require.NoError(t, loadDotEnv(path))

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, "/from-dotenv", cfg.Session.MainPath)
}

func TestLoadDotEnv_DoesNotOverrideEnvironment(t *testing.T) {
	setEnvVars(t, map[string]string{"SESSION_MAIN_PATH": "/from-env"})
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(path, []byte("SESSION_MAIN_PATH=/from-dotenv\n"), 0o600))

	require.NoError(t, loadDotEnv(path))
	assert.Equal(t, "/from-env", os.Getenv("SESSION_MAIN_PATH"))
}

func TestLoadDotEnv_MissingFileIsIgnored(t *testing.T) {
	assert.NoError(t, loadDotEnv(filepath.Join(t.TempDir(), "absent.env")))
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		k := k
		require.NoError(t, os.Setenv(k, v))
		t.Cleanup(func() { _ = os.Unsetenv(k) })
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	keys := []string{
		"CONFIG",

		"ADAPTER_ADDRESS",
		"ADAPTER_REQUEST_TIMEOUT",

		"UPLOAD_MAX_FILE_SIZE",
		"UPLOAD_MAX_FILE_COUNT",

		"SESSION_LOGIN_PATH",
		"SESSION_MAIN_PATH",
		"SESSION_CALLBACK_ADDRESS",
		"SESSION_LOGIN_ENTRY",

		"STORAGE_DB_DATABASE_URI",

		"WORKERS_REFRESH_DELAY",
		"WORKERS_REDIRECT_DELAY",
	}
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
