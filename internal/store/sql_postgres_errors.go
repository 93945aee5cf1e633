// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql/driver"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassification is the result type returned by [ErrorClassificator.Classify].
// It tells whether a failed database operation was caused by the database
// being unreachable (and may succeed later) or by the operation itself.
type ErrorClassification int

const (
	// NonRetryable is the default classification for unrecognised errors,
	// constraint violations, syntax errors and data exceptions.
	NonRetryable ErrorClassification = iota

	// Retryable indicates a transient condition such as a lost connection
	// or a server that is starting up.
	Retryable
)

// PostgresErrorClassifier implements [ErrorClassificator] for PostgreSQL
// through the pgx driver.
type PostgresErrorClassifier struct{}

// NewPostgresErrorClassifier constructs a [PostgresErrorClassifier] ready for use.
func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify implements [ErrorClassificator]. Server errors are mapped by
// code via [ClassifyPgError]; dial failures and broken pooled connections
// are [Retryable].
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) || errors.Is(err, driver.ErrBadConn) {
		return Retryable
	}

	return NonRetryable
}

// ClassifyPgError maps a *pgconn.PgError to an [ErrorClassification] based on
// the PostgreSQL error code.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Retryable codes:
//   - Class 08: connection exceptions
//   - Class 40: serialization failure, deadlock
//   - Class 57: admin shutdown, cannot connect now
//
// Everything else is [NonRetryable].
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code):
		return Retryable
	case pgerrcode.IsTransactionRollback(pgErr.Code):
		return Retryable
	}

	switch pgErr.Code {
	case pgerrcode.AdminShutdown,
		pgerrcode.CrashShutdown,
		pgerrcode.CannotConnectNow:
		return Retryable
	}

	return NonRetryable
}
