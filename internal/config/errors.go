package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, missing address or request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidCacheConfigs indicates invalid cache settings
	// (for example, an unknown backend or a missing directory).
	ErrInvalidCacheConfigs = errors.New("invalid cache configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a non-positive attempt limit).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
