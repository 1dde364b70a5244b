package store

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

const vaultCacheTable = "vault_cache"

type sqliteVaultCache struct {
	db  *DB
	now func() time.Time

	logger *logger.Logger
}

// NewSQLiteVaultCache returns a [VaultCache] keeping one envelope per
// username in the vault_cache table. Read returns the most recently written
// row. The schema must already be migrated.
func NewSQLiteVaultCache(db *DB, logger *logger.Logger) VaultCache {
	return &sqliteVaultCache{db: db, now: time.Now, logger: logger}
}

// Read implements [VaultCache].
func (s *sqliteVaultCache) Read(ctx context.Context) (models.VaultRecord, error) {
	query, args, err := sq.Select("envelope").
		From(vaultCacheTable).
		OrderBy("updated_at DESC").
		Limit(1).
		ToSql()
	if err != nil {
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultCache.Read").Msg("failed to query vault cache")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}
		return models.VaultRecord{}, ErrCacheNotFound
	}

	var envelope []byte
	if err = rows.Scan(&envelope); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultCache.Read").Msg("failed to scan vault cache row")
		return models.VaultRecord{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return DecodeEnvelope(envelope)
}

// Write implements [VaultCache]. The row of rec.Username is inserted or
// replaced.
func (s *sqliteVaultCache) Write(ctx context.Context, rec models.VaultRecord) error {
	envelope, err := EncodeEnvelope(rec)
	if err != nil {
		return err
	}

	query, args, err := sq.Insert(vaultCacheTable).
		Columns("username", "envelope", "updated_at").
		Values(rec.Username, envelope, s.now().UnixNano()).
		Suffix("ON CONFLICT(username) DO UPDATE SET envelope = excluded.envelope, updated_at = excluded.updated_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		s.logger.Err(err).Str("func", "sqliteVaultCache.Write").Msg("failed to upsert vault cache row")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// Clear implements [VaultCache].
func (s *sqliteVaultCache) Clear(ctx context.Context) error {
	query, args, err := sq.Delete(vaultCacheTable).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = s.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}
