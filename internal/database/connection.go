// Package database provides SQLite persistence for the logbook
// snapshot and settings.
package database

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"github.com/habibfidahussain/autolog/db/migrations"
	"github.com/habibfidahussain/autolog/internal/config"

	// Import SQLite driver for database/sql
	_ "modernc.org/sqlite"
)

// Context holds the open database handle.
type Context struct {
	DB *sql.DB
}

// CreateDatabase opens (creating if needed) the logbook database and
// applies pending migrations. An empty path uses the configured
// location; ":memory:" opens an in-memory database for tests.
func CreateDatabase(dbPath string) (*Context, error) {
	path := dbPath
	if path == "" {
		path = config.GetDBPath()
	}

	useMemory := path == ":memory:"

	if !useMemory {
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	var dsn string
	if useMemory {
		dsn = "file::memory:?cache=shared&_pragma=foreign_keys(ON)"
	} else {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve database path: %w", err)
		}
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(ON)", filepath.ToSlash(absPath))
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := runMigrations(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Context{DB: db}, nil
}

// CloseDatabase closes the database connection.
func CloseDatabase(ctx *Context) error {
	if ctx == nil || ctx.DB == nil {
		return nil
	}
	return ctx.DB.Close()
}

func runMigrations(db *sql.DB) error {
	driver, err := sqlite.WithInstance(db, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("failed to initialise migrate driver: %w", err)
	}

	sourceDriver, err := iofs.New(migrations.Files, ".")
	if err != nil {
		return fmt.Errorf("failed to load embedded migrations: %w", err)
	}
	defer func() {
		_ = sourceDriver.Close()
	}()

	migrator, err := migrate.NewWithInstance("iofs", sourceDriver, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("failed to create migrator: %w", err)
	}

	if err := migrator.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	return nil
}
