// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the last fetched vault on the local device.
//
// A cache holds at most one [models.VaultRecord] per backend and never sees
// a password or a decrypted field: it stores the raw blob exactly as the
// remote service returned it, wrapped in a small tagged envelope (see
// [EncodeEnvelope]). Backends are a private file, an SQLite table managed by
// goose migrations, and a no-op cache for when caching is disabled.
package store

import (
	"context"

	"github.com/MKhiriev/go-pass-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/vault_cache_mock.go -package=mock

// VaultCache stores and loads the most recently saved vault.
type VaultCache interface {
	// Read returns the cached record. It returns ErrCacheNotFound when
	// nothing was cached and ErrCacheCorrupted when the stored envelope
	// cannot be decoded.
	Read(ctx context.Context) (models.VaultRecord, error)

	// Write atomically replaces the cached record.
	Write(ctx context.Context, rec models.VaultRecord) error

	// Clear removes the cached record. Clearing an empty cache is not an
	// error.
	Clear(ctx context.Context) error
}
