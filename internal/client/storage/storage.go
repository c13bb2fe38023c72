// Package storage opens the two local key-value scopes that back the
// session store: a durable SQLite file that survives restarts ("remember
// me") and a private in-memory database that dies with the process.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
	"github.com/vltrn/datav/internal/client/migrations"
	"github.com/vltrn/datav/internal/client/repositories/metadata"

	_ "modernc.org/sqlite" // pure-Go SQLite driver
)

// gooseMu guards goose's package-level FS and dialect settings.
var gooseMu sync.Mutex

// Scope is one key-value persistence scope.
type Scope struct {
	metadata.Repository
	db *sql.DB
}

// Close releases the underlying database. Closing the session scope
// discards everything stored in it.
func (s *Scope) Close() error {
	return s.db.Close()
}

// DB exposes the underlying handle, mainly for health probes and tests.
func (s *Scope) DB() *sql.DB {
	return s.db
}

// RunMigrations applies the embedded migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}
	return nil
}

// OpenDurable opens (creating if needed) the SQLite file at path.
func OpenDurable(ctx context.Context, path string) (*Scope, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return newScope(ctx, db)
}

// OpenEphemeral opens a private in-memory database. Every connection to
// ":memory:" is a separate database, so the pool is pinned to one.
func OpenEphemeral(ctx context.Context) (*Scope, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open in-memory database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)
	db.SetConnMaxIdleTime(0)
	return newScope(ctx, db)
}

func newScope(ctx context.Context, db *sql.DB) (*Scope, error) {
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Scope{Repository: metadata.NewSQLiteRepository(db), db: db}, nil
}
