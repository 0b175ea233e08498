package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the backend base URL, always with a scheme.
	HTTPAddress string `validate:"required,url"`
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration `validate:"gt=0"`
}

// ClientUpload holds the limits enforced by the upload workflow.
type ClientUpload struct {
	// MaxFileSizeBytes is the per-file ceiling in bytes.
	MaxFileSizeBytes int64 `validate:"gt=0"`
	// MaxFileCount is the maximum batch size. 1 selects the single-file
	// multipart field.
	MaxFileCount int `validate:"gte=1"`
}

// ClientSession holds the login handoff settings.
type ClientSession struct {
	LoginPath       string `validate:"required,startswith=/"`
	MainPath        string `validate:"required,startswith=/,nefield=LoginPath"`
	CallbackAddress string `validate:"required,hostname_port"`
	LoginEntryURL   string `validate:"required,url"`
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite connection string used by the client.
	DSN string `validate:"required,excludes=memory"`
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client deferred call settings.
type ClientWorkers struct {
	// RefreshDelay is the pause before the document list is reloaded after
	// a delete.
	RefreshDelay time.Duration `validate:"gte=0"`
	// RedirectDelay is the pause before a missing credential sends the user
	// back to the login surface.
	RedirectDelay time.Duration `validate:"gte=0"`
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains the backend address and timeout.
	Adapter ClientAdapter
	// Upload contains upload limits.
	Upload ClientUpload
	// Session contains login handoff paths and addresses.
	Session ClientSession
	// Storage contains client storage settings.
	Storage ClientStorage
	// Workers contains deferred call settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps the fields onto
// [ClientConfig], derives the login entry URL when none was configured, and
// validates the result.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg)
}

func newClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	baseURL := normalizeBaseURL(cfg.Adapter.HTTPAddress)

	loginEntry := strings.TrimSpace(cfg.Session.LoginEntryURL)
	if loginEntry == "" && baseURL != "" {
		loginEntry = baseURL + loginEntryPath
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    baseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Upload: ClientUpload{
			MaxFileSizeBytes: cfg.Upload.MaxFileSizeBytes,
			MaxFileCount:     cfg.Upload.MaxFileCount,
		},
		Session: ClientSession{
			LoginPath:       cfg.Session.LoginPath,
			MainPath:        cfg.Session.MainPath,
			CallbackAddress: cfg.Session.CallbackAddress,
			LoginEntryURL:   loginEntry,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{
			RefreshDelay:  cfg.Workers.RefreshDelay,
			RedirectDelay: cfg.Workers.RedirectDelay,
		},
	}

	return clientCfg, clientCfg.validate()
}

// CallbackURL returns the absolute URL of a path on the handoff surface.
func (s ClientSession) CallbackURL(path string) string {
	return (&url.URL{Scheme: "http", Host: s.CallbackAddress, Path: path}).String()
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	return strings.TrimRight(raw, "/")
}
