// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv_AllFields(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_USERNAME":      "user@example.com",
		"APP_LOG_FILE":      "/tmp/vault.log",
		"APP_CLIPBOARD_TTL": "1m",
		"APP_MAX_ATTEMPTS":  "5",
		"APP_REFRESH":       "true",

		"CACHE_BACKEND": "sqlite",
		"CACHE_DIR":     "/var/cache/vault",
		"CACHE_DSN":     "file:vault.db",

		"ADAPTER_ADDRESS":         "https://vault.example.com",
		"ADAPTER_REQUEST_TIMEOUT": "10s",
	})

	cfg, err := parseEnv()

	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)

	assert.Equal(t, "user@example.com", cfg.App.Username)
	assert.Equal(t, "/tmp/vault.log", cfg.App.LogFile)
	assert.Equal(t, time.Minute, cfg.App.ClipboardTTL)
	assert.Equal(t, 5, cfg.App.MaxAttempts)
	assert.True(t, cfg.App.Refresh)
	assert.Empty(t, cfg.App.Account)

	assert.Equal(t, "sqlite", cfg.Cache.Backend)
	assert.Equal(t, "/var/cache/vault", cfg.Cache.Dir)
	assert.Equal(t, "file:vault.db", cfg.Cache.DSN)

	assert.Equal(t, "https://vault.example.com", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_EmptyEnv(t *testing.T) {
	clearEnvVars(t)

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_OnlyCache(t *testing.T) {
	setEnvVars(t, map[string]string{
		"CACHE_BACKEND": "none",
	})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Empty(t, cfg.Adapter.HTTPAddress)
	assert.Zero(t, cfg.Adapter.RequestTimeout)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{
		"ADAPTER_REQUEST_TIMEOUT": "soon",
	})

	_, err := parseEnv()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidInt(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_MAX_ATTEMPTS": "many",
	})

	_, err := parseEnv()
	require.Error(t, err)
}

// Helpers

var envKeys = []string{
	"CONFIG",

	"APP_USERNAME",
	"APP_LOG_FILE",
	"APP_CLIPBOARD_TTL",
	"APP_MAX_ATTEMPTS",
	"APP_REFRESH",

	"CACHE_BACKEND",
	"CACHE_DIR",
	"CACHE_DSN",

	"ADAPTER_ADDRESS",
	"ADAPTER_REQUEST_TIMEOUT",
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

// clearEnvVars unsets every known variable; t.Setenv restores the previous
// values when the test ends.
func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestParseEnv_MarksExplicitZeroValues(t *testing.T) {
	setEnvVars(t, map[string]string{
		"APP_CLIPBOARD_TTL": "0s",
		"APP_REFRESH":       "false",
	})

	cfg, err := parseEnv()
	require.NoError(t, err)

	assert.Zero(t, cfg.App.ClipboardTTL)
	assert.True(t, cfg.explicit.clipboardTTL)
	assert.True(t, cfg.explicit.refresh)
}
