// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the process: serve until ctx ends or a
// termination signal arrives, then stop.
type Server interface {
	// RunServer blocks until shutdown completes. It returns an error only
	// when serving fails for a reason other than shutdown.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting requests and waits for in-flight ones
	// until ctx expires.
	Shutdown(ctx context.Context) error
}
