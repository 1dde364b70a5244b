package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig is the on-disk layout of the JSON config file.
type StructuredJSONConfig struct {
	App struct {
		Username     string    `json:"username"`
		LogFile      string    `json:"log_file"`
		ClipboardTTL *Duration `json:"clipboard_ttl"`
		MaxAttempts  int       `json:"max_attempts"`
		Refresh      *bool     `json:"refresh"`
	} `json:"app,omitempty"`

	Cache struct {
		Backend string `json:"backend"`
		Dir     string `json:"dir"`
		DSN     string `json:"dsn"`
	} `json:"cache,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`
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
		App: App{
			Username:     jsonCfg.App.Username,
			LogFile:      jsonCfg.App.LogFile,
			MaxAttempts:  jsonCfg.App.MaxAttempts,
		},
		Cache: Cache{
			Backend: jsonCfg.Cache.Backend,
			Dir:     jsonCfg.Cache.Dir,
			DSN:     jsonCfg.Cache.DSN,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
	}

	if ttl := jsonCfg.App.ClipboardTTL; ttl != nil {
		cfg.App.ClipboardTTL = time.Duration(*ttl)
		cfg.explicit.clipboardTTL = true
	}
	if refresh := jsonCfg.App.Refresh; refresh != nil {
		cfg.App.Refresh = *refresh
		cfg.explicit.refresh = true
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
