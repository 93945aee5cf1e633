// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request and session values before they reach
// the services or the session storage.
//
// A [Validator] validates a whole value, or only the named fields when
// field names are passed.
package validators

import "context"

// Validator validates the provided input and optionally restricts
// validation to specific named fields.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
