// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrInvalidSessionCookie marks a session cookie whose signature or
	// timestamp does not verify.
	ErrInvalidSessionCookie = errors.New("invalid session cookie")
)
