// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "time"

const (
	defaultBackendAddress   = "http://127.0.0.1:8000"
	defaultRequestTimeout   = 2 * time.Minute
	defaultMaxFileSizeBytes = 50 * 1024 * 1024
	defaultMaxFileCount     = 10
	defaultLoginPath        = "/index.html"
	defaultMainPath         = "/app.html"
	defaultCallbackAddress  = "127.0.0.1:8765"
	defaultDSN              = "doc-query.db"
	defaultRefreshDelay     = 500 * time.Millisecond
	defaultRedirectDelay    = 2 * time.Second

	loginEntryPath = "/auth/google/login"
)

func defaultStructuredConfig() *StructuredConfig {
	return &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    defaultBackendAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Upload: Upload{
			MaxFileSizeBytes: defaultMaxFileSizeBytes,
			MaxFileCount:     defaultMaxFileCount,
		},
		Session: Session{
			LoginPath:       defaultLoginPath,
			MainPath:        defaultMainPath,
			CallbackAddress: defaultCallbackAddress,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Workers: Workers{
			RefreshDelay:  defaultRefreshDelay,
			RedirectDelay: defaultRedirectDelay,
		},
	}
}
