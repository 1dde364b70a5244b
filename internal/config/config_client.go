package config

import (
	"fmt"
	"time"
)

// ClientApp holds terminal client settings.
type ClientApp struct {
	// Username is the account e-mail, possibly empty.
	Username string
	// LogFile is the log destination; empty means stderr.
	LogFile string
	// ClipboardTTL is how long a copied password stays on the clipboard.
	ClipboardTTL time.Duration
	// MaxAttempts bounds the password re-prompt loop.
	MaxAttempts int
	// Refresh forces a network fetch.
	Refresh bool
	// Account is the account to copy; empty lists all accounts.
	Account string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the vault service.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientCache holds the vault cache settings.
type ClientCache struct {
	// Backend is one of CacheBackendFile, CacheBackendSQLite, CacheBackendNone.
	Backend string
	// Dir is the file backend directory.
	Dir string
	// DSN is the sqlite backend connection string.
	DSN string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Cache   ClientCache
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			Username:     cfg.App.Username,
			LogFile:      cfg.App.LogFile,
			ClipboardTTL: cfg.App.ClipboardTTL,
			MaxAttempts:  cfg.App.MaxAttempts,
			Refresh:      cfg.App.Refresh,
			Account:      cfg.App.Account,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Cache: ClientCache{
			Backend: cfg.Cache.Backend,
			Dir:     cfg.Cache.Dir,
			DSN:     cfg.Cache.DSN,
		},
	}
}
