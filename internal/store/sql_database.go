// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"net/url"
	"strconv"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/migrations"
)

// DB wraps a database/sql pool together with the dialect-specific pieces
// repositories need: a placeholder-aware query builder and an error
// classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens and pings the database described by cfg. Supported
// drivers are "pgx" (PostgreSQL) and "sqlite3".
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	switch cfg.Driver {
	case "pgx":
		return NewConnectPostgres(ctx, cfg, log)
	case "sqlite3":
		return NewConnectSQLite(ctx, cfg, log)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, cfg.Driver)
	}
}

// newDB wraps an open pool. Exposed to tests through sqlmock.
func newDB(conn *sql.DB, driver string, log *logger.Logger) *DB {
	db := &DB{
		DB:     conn,
		driver: driver,
		logger: log,
	}

	switch driver {
	case "pgx":
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
		db.errorClassificator = NewPostgresErrorClassifier()
	default:
		db.builder = sq.StatementBuilder.PlaceholderFormat(sq.Question)
		db.errorClassificator = NewSQLiteErrorClassifier()
	}

	return db
}

// Migrate applies the embedded schema for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// queryError wraps a failed query. Transient failures additionally match
// [ErrDatabaseUnavailable].
func (db *DB) queryError(err error) error {
	if db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w: %w", ErrExecutingQuery, ErrDatabaseUnavailable, err)
	}
	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}

// dataSourceName returns cfg.DSN when set, otherwise a postgres:// URL built
// from the discrete connection fields.
func dataSourceName(cfg config.DB) string {
	if cfg.DSN != "" {
		return cfg.DSN
	}

	host := cfg.Host
	if cfg.Port != 0 {
		host = net.JoinHostPort(cfg.Host, strconv.Itoa(cfg.Port))
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   host,
		Path:   "/" + cfg.Name,
	}
	if cfg.Password != "" {
		u.User = url.UserPassword(cfg.User, cfg.Password)
	} else if cfg.User != "" {
		u.User = url.User(cfg.User)
	}

	return u.String()
}

// isNoRows reports a single-row query that matched nothing.
func isNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows)
}
