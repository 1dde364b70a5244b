package store

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

func TestFileVaultCache_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	cache := NewFileVaultCache(dir, logger.Nop())
	ctx := context.Background()

	_, err := cache.Read(ctx)
	require.ErrorIs(t, err, ErrCacheNotFound)

	rec := models.VaultRecord{Username: "user@example.com", Iterations: 5000, Raw: []byte("raw vault")}
	require.NoError(t, cache.Write(ctx, rec))

	got, err := cache.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, rec, got)

	dirInfo, err := os.Stat(dir)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())

	fileInfo, err := os.Stat(filepath.Join(dir, cacheFileName))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), fileInfo.Mode().Perm())
}

func TestFileVaultCache_OverwriteLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	cache := NewFileVaultCache(dir, logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Write(ctx, models.VaultRecord{Username: "a", Iterations: 2, Raw: []byte("first")}))
	require.NoError(t, cache.Write(ctx, models.VaultRecord{Username: "b", Iterations: 3, Raw: []byte("second")}))

	got, err := cache.Read(ctx)
	require.NoError(t, err)
	assert.Equal(t, "b", got.Username)
	assert.Equal(t, []byte("second"), got.Raw)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, cacheFileName, entries[0].Name())
}

func TestFileVaultCache_Corrupted(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cacheFileName), []byte("garbage"), 0o600))

	_, err := NewFileVaultCache(dir, logger.Nop()).Read(context.Background())
	assert.ErrorIs(t, err, ErrCacheCorrupted)
}

func TestFileVaultCache_Clear(t *testing.T) {
	cache := NewFileVaultCache(t.TempDir(), logger.Nop())
	ctx := context.Background()

	require.NoError(t, cache.Clear(ctx), "clearing an empty cache")

	require.NoError(t, cache.Write(ctx, models.VaultRecord{Username: "a", Iterations: 2}))
	require.NoError(t, cache.Clear(ctx))

	_, err := cache.Read(ctx)
	assert.ErrorIs(t, err, ErrCacheNotFound)
}

func TestFileVaultCache_WriteInvalidRecord(t *testing.T) {
	dir := t.TempDir()
	cache := NewFileVaultCache(dir, logger.Nop())

	err := cache.Write(context.Background(), models.VaultRecord{Username: "a"})
	require.Error(t, err)

	_, statErr := os.Stat(filepath.Join(dir, cacheFileName))
	assert.ErrorIs(t, statErr, os.ErrNotExist)
}

func TestFileVaultCache_CanceledContext(t *testing.T) {
	cache := NewFileVaultCache(t.TempDir(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, cache.Write(ctx, models.VaultRecord{Username: "a", Iterations: 2}), context.Canceled)
	_, err := cache.Read(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, cache.Clear(ctx), context.Canceled)
}
