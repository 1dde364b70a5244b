package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

type nopVaultCache struct{}

// NewNopVaultCache returns a [VaultCache] that stores nothing. Read always
// reports ErrCacheNotFound.
func NewNopVaultCache() VaultCache {
	return nopVaultCache{}
}

func (nopVaultCache) Read(context.Context) (models.VaultRecord, error) {
	return models.VaultRecord{}, ErrCacheNotFound
}

func (nopVaultCache) Write(context.Context, models.VaultRecord) error { return nil }

func (nopVaultCache) Clear(context.Context) error { return nil }
