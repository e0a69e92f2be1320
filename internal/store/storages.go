package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-todo-api/internal/config"
	"github.com/MKhiriev/go-todo-api/internal/logger"
)

// Storages bundles every repository behind one value, handed to the
// service layer at startup.
type Storages struct {
	UserRepository  UserRepository
	TokenRepository TokenRepository
	TagRepository   TagRepository
	TodoRepository  TodoRepository
}

// NewStorages connects to the backend selected by cfg.DB.Driver, applies
// pending migrations, and wires all repositories onto the shared
// connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Debug().Msg("creating storages")

	db, err := connect(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "NewStorages").Msg("error applying migrations")
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	return &Storages{
		UserRepository:  NewUserRepository(db, log),
		TokenRepository: NewTokenRepository(db, log),
		TagRepository:   NewTagRepository(db, log),
		TodoRepository:  NewTodoRepository(db, log),
	}, nil
}

func connect(ctx context.Context, cfg config.Storage, log *logger.Logger) (*DB, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		return NewConnectPostgres(ctx, cfg.DB, log)
	case config.DriverSQLite:
		return NewConnectSQLite(ctx, cfg.DB, log)
	default:
		return nil, fmt.Errorf("unknown database driver: %q", cfg.DB.Driver)
	}
}
