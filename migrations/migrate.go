// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the schema for both supported SQL backends and
// applies it with goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var (
	ErrNilDB              = errors.New("db is nil")
	ErrUnsupportedDialect = errors.New("unsupported migration dialect")
)

// Migrate applies all pending migrations for driver ("pgx" or "sqlite3").
func Migrate(ctx context.Context, db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", ErrNilDB)
	}

	dialect, dir, err := dialectFor(driver)
	if err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	fsys, err := fs.Sub(embedMigrations, dir)
	if err != nil {
		return fmt.Errorf("migration error opening %s migrations: %w", dir, err)
	}

	provider, err := goose.NewProvider(dialect, db, fsys)
	if err != nil {
		return fmt.Errorf("migration error creating provider: %w", err)
	}

	if _, err = provider.Up(ctx); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

func dialectFor(driver string) (goose.Dialect, string, error) {
	switch driver {
	case "pgx", "postgres":
		return goose.DialectPostgres, "postgres", nil
	case "sqlite3", "sqlite":
		return goose.DialectSQLite3, "sqlite", nil
	default:
		return "", "", fmt.Errorf("%w: %q", ErrUnsupportedDialect, driver)
	}
}
