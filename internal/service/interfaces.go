// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

//go:generate mockgen -source=interfaces.go -destination=../mock/service.go -package=mock

import (
	"context"

	"github.com/MKhiriev/web-quiz/models"
)

type AuthService interface {
	// Authenticate returns the user whose credentials match, or an error
	// wrapping ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (models.User, error)

	// UserInfo returns the user with userID, or ErrUserNotFound.
	UserInfo(ctx context.Context, userID int64) (models.User, error)
}

type SessionService interface {
	// Start clears previousID (if any) and creates a permanent session for
	// userID.
	Start(ctx context.Context, userID int64, previousID string) (models.Session, error)

	// Get returns a live session or ErrNoSession.
	Get(ctx context.Context, sessionID string) (models.Session, error)

	// Refresh restarts the lifetime of a permanent session and stores it.
	// Non-permanent sessions are returned unchanged.
	Refresh(ctx context.Context, session models.Session) (models.Session, error)

	// Clear deletes a session. Clearing an empty or unknown ID succeeds.
	Clear(ctx context.Context, sessionID string) error

	// PurgeExpired removes expired sessions from storages without native
	// expiry.
	PurgeExpired(ctx context.Context) (int, error)
}

type UserService interface {
	CreateUser(ctx context.Context, payload any) error
}

// IDGenerator produces session IDs.
type IDGenerator interface {
	Generate() string
}
