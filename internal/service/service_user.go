// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/web-quiz/internal/logger"
)

const redacted = "[REDACTED]"

// userService accepts create-user payloads without persisting them.
type userService struct {
	logger *logger.Logger
}

func NewUserService(logger *logger.Logger) UserService {
	return &userService{logger: logger}
}

// CreateUser logs payload with secret-looking fields redacted and reports
// ErrUserCreationNotSupported. payload may be any decoded JSON value.
func (u *userService) CreateUser(ctx context.Context, payload any) error {
	logger.FromContext(ctx).Info().
		Any("payload", redactSecrets(payload)).
		Msg("create user request received")

	return ErrUserCreationNotSupported
}

// redactSecrets returns a copy of payload with values under secret-looking
// keys replaced, recursing into nested objects and arrays. Scalars are
// returned as is.
func redactSecrets(payload any) any {
	switch v := payload.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			if isSecretKey(k) {
				out[k] = redacted
				continue
			}
			out[k] = redactSecrets(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = redactSecrets(val)
		}
		return out
	default:
		return v
	}
}

func isSecretKey(key string) bool {
	k := strings.ToLower(key)
	for _, marker := range []string{"password", "secret", "token"} {
		if strings.Contains(k, marker) {
			return true
		}
	}
	return false
}
