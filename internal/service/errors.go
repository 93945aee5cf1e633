// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrInvalidCredentials covers every failed login: unknown username,
	// wrong password or an empty username.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrWrongPassword      = errors.New("wrong password")

	// ErrUserNotFound is returned by UserInfo when the user referenced by a
	// session no longer exists.
	ErrUserNotFound = errors.New("user not found")

	// ErrNoSession is returned for a missing, unknown or expired session.
	ErrNoSession = errors.New("no active session")

	// ErrUserCreationNotSupported is returned by the create-user
	// placeholder, which accepts payloads but never persists them.
	ErrUserCreationNotSupported = errors.New("user creation is not supported")
)
