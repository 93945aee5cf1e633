// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store.go -package=mock

import (
	"context"

	"github.com/MKhiriev/web-quiz/models"
)

// UserRepository reads quiz accounts from the relational database.
type UserRepository interface {
	// FindCredentialsByUsername returns the login data for username or
	// [ErrNoUserWasFound].
	FindCredentialsByUsername(ctx context.Context, username string) (models.Credentials, error)

	// FindUserByID returns the full user row or [ErrNoUserWasFound].
	FindUserByID(ctx context.Context, userID int64) (models.User, error)
}

// SessionStorage keeps server-side sessions keyed by their ID.
type SessionStorage interface {
	// Save stores session until its ExpiresAt, replacing any session with
	// the same ID.
	Save(ctx context.Context, session models.Session) error

	// Get returns a live session or [ErrSessionNotFound].
	Get(ctx context.Context, sessionID string) (models.Session, error)

	// Delete removes a session. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, sessionID string) error

	// PurgeExpired drops expired sessions and reports how many were removed.
	// Backends with native expiry return 0.
	PurgeExpired(ctx context.Context) (int, error)

	// Close releases backend resources.
	Close() error
}

// ErrorClassificator decides whether a failed database operation is
// transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
