// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
)

// Worker is a background job. Run blocks until ctx is cancelled.
type Worker interface {
	Run(ctx context.Context)
}

type Workers struct {
	workers []Worker
}

// NewWorkers selects the workers the configuration needs. Redis expires
// sessions itself, so the janitor only runs for the in-memory store.
func NewWorkers(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	w := &Workers{}

	if cfg.Session.RedisAddress == "" {
		w.workers = append(w.workers, NewSessionJanitor(services.SessionService, cfg.Session.JanitorInterval, logger))
	}

	logger.Info().Int("count", len(w.workers)).Msg("background workers created")
	return w
}

// Run starts every worker in its own goroutine and waits for all of them
// to return.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for _, worker := range w.workers {
		wg.Go(func() {
			worker.Run(ctx)
		})
	}
	wg.Wait()
}
