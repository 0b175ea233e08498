package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type StructuredJSONConfig struct {
	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Upload struct {
		MaxFileSizeBytes int64 `json:"max_file_size"`
		MaxFileCount     int   `json:"max_file_count"`
	} `json:"upload,omitempty"`

	Session struct {
		LoginPath       string `json:"login_path"`
		MainPath        string `json:"main_path"`
		CallbackAddress string `json:"callback_address"`
		LoginEntryURL   string `json:"login_entry"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Workers struct {
		RefreshDelay  Duration `json:"refresh_delay"`
		RedirectDelay Duration `json:"redirect_delay"`
	} `json:"workers,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Upload: Upload{
			MaxFileSizeBytes: jsonCfg.Upload.MaxFileSizeBytes,
			MaxFileCount:     jsonCfg.Upload.MaxFileCount,
		},
		Session: Session{
			LoginPath:       jsonCfg.Session.LoginPath,
			MainPath:        jsonCfg.Session.MainPath,
			CallbackAddress: jsonCfg.Session.CallbackAddress,
			LoginEntryURL:   jsonCfg.Session.LoginEntryURL,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Workers: Workers{
			RefreshDelay:  time.Duration(jsonCfg.Workers.RefreshDelay),
			RedirectDelay: time.Duration(jsonCfg.Workers.RedirectDelay),
		},
		JSONFilePath: "",
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
