// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package workers runs the background jobs of the web-quiz API server.
// Each [Worker] gets its own goroutine and stops when the context passed to
// [Workers.Run] is cancelled.
package workers
