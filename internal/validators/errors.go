// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrMissingUsername = errors.New("username is required")
	ErrMissingPassword = errors.New("password is required")

	ErrEmptySessionID   = errors.New("session ID is required")
	ErrInvalidUserID    = errors.New("invalid user ID")
	ErrInvalidExpiresAt = errors.New("session must expire after it is created")
)
