// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository and storage methods to signal
// well-known failure conditions. Callers should use [errors.Is] to match
// against these values.
var (
	// ErrNoUserWasFound is returned when a query expected to match exactly
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrSessionNotFound is returned when a session ID is unknown to the
	// session storage or has already expired.
	ErrSessionNotFound = errors.New("session was not found")

	// ErrDatabaseUnavailable marks failures caused by a lost or refused
	// connection rather than by the query itself.
	ErrDatabaseUnavailable = errors.New("database is unavailable")

	// ErrSessionStorageUnavailable is returned when the session backend
	// (Redis) cannot be reached.
	ErrSessionStorageUnavailable = errors.New("session storage is unavailable")

	// ErrUnsupportedDriver is returned by [NewConnect] for drivers other
	// than "pgx" and "sqlite3".
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrScanningRow is returned when scanning column values from a single
	// result row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrEncodingSession is returned when a session cannot be serialized
	// for, or deserialized from, the session backend.
	ErrEncodingSession = errors.New("failed to encode session")
)
