// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains the plain-text messages written into HTTP error
// bodies by the web-quiz API server. Keeping them in one place keeps the
// wording identical across handlers and middleware.
package app

const (
	// MsgInvalidJSON is returned when a JSON request body cannot be decoded.
	MsgInvalidJSON = "Invalid JSON was passed"

	// MsgInvalidForm is returned when the debug login form is incomplete.
	MsgInvalidForm = "Invalid form was passed"

	// MsgInvalidGzip is returned when a request claims gzip encoding but
	// the body is not a gzip stream.
	MsgInvalidGzip = "Invalid gzip data"
)
