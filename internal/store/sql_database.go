package store

import (
	"database/sql"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/migrations"
)

// DB wraps the SQLite connection used by the sqlite cache backend.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

// Migrate applies pending schema migrations.
func (db *DB) Migrate() error {
	if err := migrations.Migrate(db.DB); err != nil {
		db.logger.Err(err).Str("func", "DB.Migrate").Msg("failed to apply migrations")
		return err
	}

	db.logger.Debug().Str("func", "DB.Migrate").Msg("migrations applied")
	return nil
}
