// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application: typed context keys,
// JSON response writing, password hashing and ID generation.
package utils

import (
	"context"

	"github.com/MKhiriev/web-quiz/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the session middleware stores the
// current [models.Session].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying session.
func WithSession(ctx context.Context, session models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, session)
}

// GetSessionFromContext retrieves the session attached by the session
// middleware.
//
// ok is false for anonymous requests.
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	session, ok := ctx.Value(SessionCtxKey).(models.Session)
	return session, ok
}
