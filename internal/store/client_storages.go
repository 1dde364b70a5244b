package store

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-pass-vault/internal/config"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
)

// ClientStorages groups the client-side storage used by the service layer.
type ClientStorages struct {
	// VaultCache is the configured vault cache backend.
	VaultCache VaultCache

	closer io.Closer
}

// NewClientStorages initialises the cache backend selected by cfg.Backend:
//   - "file": a private file under cfg.Dir;
//   - "sqlite": the vault_cache table in cfg.DSN, migrated on open;
//   - "none": a cache that stores nothing.
func NewClientStorages(ctx context.Context, cfg config.ClientCache, logger *logger.Logger) (*ClientStorages, error) {
	logger.Info().Str("backend", cfg.Backend).Msg("creating vault cache...")

	switch cfg.Backend {
	case config.CacheBackendFile:
		return &ClientStorages{VaultCache: NewFileVaultCache(cfg.Dir, logger)}, nil
	case config.CacheBackendNone:
		return &ClientStorages{VaultCache: NewNopVaultCache()}, nil
	case config.CacheBackendSQLite:
		db, err := NewConnectSQLite(ctx, cfg.DSN, logger)
		if err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		return &ClientStorages{VaultCache: NewSQLiteVaultCache(db, logger), closer: db}, nil
	default:
		return nil, fmt.Errorf("%w: unknown cache backend %q", config.ErrInvalidCacheConfigs, cfg.Backend)
	}
}

// Close releases the backend's resources, if any.
func (s *ClientStorages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
