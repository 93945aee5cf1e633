// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema and applies it with goose.
// Each supported driver has its own directory because the column types
// differ between PostgreSQL and SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// dialects maps a database/sql driver name to the goose dialect and the
// migrations directory.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"pgx":     {dialect: "pgx", dir: "postgres"},
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
}

// Migrate applies all pending migrations for driver to db.
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
