// Package storage opens the catalog store selected by configuration.
package storage

import (
	"context"
	"fmt"
	"io"

	"trivia-app/internal/config"
	"trivia-app/internal/trivia"
	"trivia-app/internal/trivia/memory"
	"trivia-app/internal/trivia/postgres"
	"trivia-app/internal/trivia/sqlite"
)

type Store interface {
	trivia.CatalogRepository
	io.Closer
}

// Versioned is implemented by stores whose schema is migration-managed.
type Versioned interface {
	SchemaVersion(ctx context.Context) (uint, error)
}

func Open(ctx context.Context, cfg config.Config) (Store, error) {
	switch cfg.Store.Driver {
	case config.DriverSQLite:
		return sqlite.NewSQLiteStore(cfg.Store.SQLitePath)
	case config.DriverPostgres:
		return postgres.NewPostgresStore(ctx, cfg.Postgres, cfg.Store.Migrate)
	case config.DriverMemory:
		return memory.NewStore(), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}
