// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"
)

// Cache backends accepted by Cache.Backend.
const (
	CacheBackendFile   = "file"
	CacheBackendSQLite = "sqlite"
	CacheBackendNone   = "none"
)

// Default values applied before any other source.
const (
	DefaultHTTPAddress    = "https://lastpass.com"
	DefaultRequestTimeout = 30 * time.Second
	DefaultClipboardTTL   = 5 * time.Minute
	DefaultMaxAttempts    = 3

	appDirName = "go-pass-vault"
)

// StructuredConfig is the top-level configuration container for the
// go-pass-vault client. It aggregates all sub-configurations and is
// populated by merging values from defaults, environment variables,
// command-line flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds interactive client settings.
	App App `envPrefix:"APP_"`

	// Cache selects and configures the local vault cache.
	Cache Cache `envPrefix:"CACHE_"`

	// Adapter holds the remote vault service address and request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// explicit marks options this source set on purpose, zero values included.
	explicit explicitFields
}

// explicitFields flags options whose zero value is meaningful. mergo skips
// zero values under WithOverride, so the builder re-applies flagged ones in
// source order after the merge.
type explicitFields struct {
	clipboardTTL bool
	refresh      bool
}

// App holds settings of the terminal client.
type App struct {
	// Username is the account e-mail. Prompted for when empty.
	// Env: APP_USERNAME
	Username string `env:"USERNAME"`

	// LogFile is the file the client appends its logs to. Empty means stderr.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ClipboardTTL is how long a copied password stays on the clipboard.
	// Env: APP_CLIPBOARD_TTL
	ClipboardTTL time.Duration `env:"CLIPBOARD_TTL"`

	// MaxAttempts bounds the password re-prompt loop.
	// Env: APP_MAX_ATTEMPTS
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// Refresh forces a network fetch and drops the cached vault.
	// Env: APP_REFRESH
	Refresh bool `env:"REFRESH"`

	// Account is the name of the account to copy. Only set from the first
	// positional command-line argument.
	Account string
}

// Cache holds the local vault cache settings.
type Cache struct {
	// Backend is one of "file", "sqlite" or "none".
	// Env: CACHE_BACKEND
	Backend string `env:"BACKEND"`

	// Dir is the directory of the file backend.
	// Env: CACHE_DIR
	Dir string `env:"DIR"`

	// DSN is the SQLite data source name of the sqlite backend.
	// Env: CACHE_DSN
	DSN string `env:"DSN"`
}

// Adapter holds the settings of the remote vault service client.
type Adapter struct {
	// HTTPAddress is the base URL of the vault service.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	cacheDir := ""
	if base, err := os.UserCacheDir(); err == nil {
		cacheDir = filepath.Join(base, appDirName)
	}

	return &StructuredConfig{
		App: App{
			ClipboardTTL: DefaultClipboardTTL,
			MaxAttempts:  DefaultMaxAttempts,
		},
		Cache: Cache{
			Backend: CacheBackendFile,
			Dir:     cacheDir,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the configuration from all
// available sources. args are the command-line arguments without the program
// name.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
