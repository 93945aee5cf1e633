// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// ErrUnknownEnvironment is returned by [Resolve] and [GetStructuredConfig]
// when the requested environment has no registered profile. It is fatal at
// startup.
var ErrUnknownEnvironment = errors.New("unknown environment")

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, a short secret key or an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidSessionConfigs indicates an invalid session cookie policy
	// or session storage setting.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
	// ErrInvalidStorageConfigs indicates incomplete database settings.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates a missing listen address or
	// request timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
