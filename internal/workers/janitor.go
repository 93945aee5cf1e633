// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/service"
)

// SessionJanitor periodically drops expired sessions from storages that
// have no native expiry.
type SessionJanitor struct {
	sessions service.SessionService
	interval time.Duration
	logger   *logger.Logger
}

func NewSessionJanitor(sessions service.SessionService, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		sessions: sessions,
		interval: interval,
		logger:   logger,
	}
}

func (j *SessionJanitor) Run(ctx context.Context) {
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")

	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *SessionJanitor) purge(ctx context.Context) {
	purged, err := j.sessions.PurgeExpired(ctx)
	if err != nil {
		if ctx.Err() == nil {
			j.logger.Err(err).Str("func", "*SessionJanitor.purge").Msg("error purging expired sessions")
		}
		return
	}

	if purged > 0 {
		j.logger.Debug().Int("purged", purged).Msg("expired sessions purged")
	}
}
