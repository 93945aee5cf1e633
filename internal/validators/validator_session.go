// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"

	"github.com/MKhiriev/web-quiz/models"
)

const (
	FieldUsername  = "username"
	FieldPassword  = "password"
	FieldSessionID = "id"
	FieldUserID    = "user_id"
	FieldExpiresAt = "expires_at"
)

// SessionValidator validates login requests and the sessions they start.
type SessionValidator struct{}

func NewSessionValidator() Validator {
	return &SessionValidator{}
}

func (v *SessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.LoginRequest:
		return v.validateLoginRequest(ctx, value, fields...)
	case *models.LoginRequest:
		return v.validateLoginRequest(ctx, *value, fields...)

	case models.Session:
		return v.validateSession(ctx, value, fields...)
	case *models.Session:
		return v.validateSession(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

// validateLoginRequest only checks that both keys were sent. Empty values
// are left to authentication, which rejects them like any bad pair.
func (v *SessionValidator) validateLoginRequest(_ context.Context, request models.LoginRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if request.Username == nil {
				return ErrMissingUsername
			}
		case FieldPassword:
			if request.Password == nil {
				return ErrMissingPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *SessionValidator) validateSession(_ context.Context, session models.Session, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldSessionID, FieldUserID, FieldExpiresAt}
	}

	for _, f := range fields {
		switch f {
		case FieldSessionID:
			if session.ID == "" {
				return ErrEmptySessionID
			}
		case FieldUserID:
			if session.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldExpiresAt:
			if !session.ExpiresAt.After(session.CreatedAt) {
				return ErrInvalidExpiresAt
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
