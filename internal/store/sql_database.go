package store

import (
	"database/sql"

	"github.com/MKhiriev/go-todo-api/internal/logger"
	"github.com/MKhiriev/go-todo-api/migrations"
)

// DB wraps the shared *sql.DB handle together with the goose dialect of
// the backend it is connected to.
type DB struct {
	*sql.DB
	dialect string
	logger  *logger.Logger
}

// Migrate applies all pending schema migrations for the connected
// backend.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}
