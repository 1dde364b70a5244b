// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
)

// validate checks the merged [StructuredConfig] before it is projected into a
// client view. Only source-independent invariants live here; everything the
// client needs to run is checked by [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	if cfg.Adapter.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAdapterConfigs)
	}
	if cfg.App.ClipboardTTL < 0 {
		return fmt.Errorf("%w: negative clipboard ttl", ErrInvalidAppConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if _, err := url.Parse(cfg.Adapter.HTTPAddress); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAdapterConfigs, err)
	}

	switch cfg.Cache.Backend {
	case CacheBackendFile:
		if cfg.Cache.Dir == "" {
			return fmt.Errorf("%w: cache dir is required", ErrInvalidCacheConfigs)
		}
	case CacheBackendSQLite:
		if cfg.Cache.DSN == "" {
			return fmt.Errorf("%w: cache dsn is required", ErrInvalidCacheConfigs)
		}
	case CacheBackendNone:
	default:
		return fmt.Errorf("%w: unknown backend %q", ErrInvalidCacheConfigs, cfg.Cache.Backend)
	}

	if cfg.App.MaxAttempts < 1 {
		return fmt.Errorf("%w: max attempts must be positive", ErrInvalidAppConfigs)
	}

	return nil
}
