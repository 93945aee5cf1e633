// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose issues its own queries; none are expected by the mock
	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db is nil")
}

func TestMigrate_UnsupportedDriver(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	err = Migrate(db, "mysql")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported driver")
}

func TestMigrate_SQLiteCreatesUsersTable(t *testing.T) {
	db, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	defer db.Close()
	db.SetMaxOpenConns(1)

	require.NoError(t, Migrate(db, "sqlite3"))
	// applying twice is a no-op
	require.NoError(t, Migrate(db, "sqlite3"))

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alb', 'x')`)
	require.NoError(t, err)

	var firstName string
	require.NoError(t, db.QueryRow(`SELECT first_name FROM users WHERE username = 'alb'`).Scan(&firstName))
	assert.Empty(t, firstName)

	_, err = db.Exec(`INSERT INTO users (username, password_hash) VALUES ('alb', 'y')`)
	assert.Error(t, err, "username must be unique")
}
