package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	cacheFileName = "vault"
	cacheDirPerm  = 0o700
	cacheFilePerm = 0o600
)

type fileVaultCache struct {
	path string

	logger *logger.Logger
}

// NewFileVaultCache returns a [VaultCache] storing the envelope in
// <dir>/vault. The directory is created on the first write.
func NewFileVaultCache(dir string, logger *logger.Logger) VaultCache {
	return &fileVaultCache{path: filepath.Join(dir, cacheFileName), logger: logger}
}

// Read implements [VaultCache].
func (f *fileVaultCache) Read(ctx context.Context) (models.VaultRecord, error) {
	if err := ctx.Err(); err != nil {
		return models.VaultRecord{}, err
	}

	data, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return models.VaultRecord{}, ErrCacheNotFound
	}
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("read vault cache: %w", err)
	}

	return DecodeEnvelope(data)
}

// Write implements [VaultCache]. The envelope goes to a temporary file in the
// same directory, is synced, and then renamed over the previous cache, so a
// reader sees either the old or the new vault.
func (f *fileVaultCache) Write(ctx context.Context, rec models.VaultRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := EncodeEnvelope(rec)
	if err != nil {
		return err
	}

	dir := filepath.Dir(f.path)
	if err = os.MkdirAll(dir, cacheDirPerm); err != nil {
		return fmt.Errorf("create vault cache dir: %w", err)
	}

	if err = atomicWriteFile(f.path, data, cacheFilePerm); err != nil {
		f.logger.Err(err).Str("func", "fileVaultCache.Write").Msg("failed to write vault cache")
		return fmt.Errorf("write vault cache: %w", err)
	}

	f.logger.Debug().Str("func", "fileVaultCache.Write").Int("bytes", len(data)).Msg("vault cache written")
	return nil
}

// Clear implements [VaultCache].
func (f *fileVaultCache) Clear(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.Remove(f.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove vault cache: %w", err)
	}
	return nil
}

func atomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)
	tmpFile, err := os.CreateTemp(dir, ".vault-*")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	defer func() {
		tmpFile.Close()
		os.Remove(tmpPath)
	}()

	if err = tmpFile.Chmod(perm); err != nil {
		return err
	}
	if _, err = tmpFile.Write(data); err != nil {
		return err
	}
	if err = tmpFile.Sync(); err != nil {
		return err
	}
	if err = tmpFile.Close(); err != nil {
		return err
	}

	if err = os.Rename(tmpPath, path); err != nil {
		return err
	}

	_ = syncDir(dir)
	return nil
}

func syncDir(dir string) error {
	d, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer d.Close()
	return d.Sync()
}
