// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/internal/store"
	"github.com/MKhiriev/web-quiz/internal/validators"
	"github.com/MKhiriev/web-quiz/models"
)

type sessionService struct {
	storage   store.SessionStorage
	lifetime  time.Duration
	ids       IDGenerator
	validator validators.Validator
	now       func() time.Time
	logger    *logger.Logger
}

// NewSessionService returns a SessionService whose sessions last lifetime.
func NewSessionService(storage store.SessionStorage, lifetime time.Duration, ids IDGenerator, logger *logger.Logger) SessionService {
	return &sessionService{
		storage:   storage,
		lifetime:  lifetime,
		ids:       ids,
		validator: validators.NewSessionValidator(),
		now:       time.Now,
		logger:    logger,
	}
}

func (s *sessionService) Start(ctx context.Context, userID int64, previousID string) (models.Session, error) {
	if err := s.Clear(ctx, previousID); err != nil {
		return models.Session{}, err
	}

	now := s.now()
	session := models.Session{
		ID:        s.ids.Generate(),
		UserID:    userID,
		Permanent: true,
		CreatedAt: now,
		ExpiresAt: now.Add(s.lifetime),
	}

	if err := s.validator.Validate(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("invalid session: %w", err)
	}

	if err := s.storage.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	logger.FromContext(ctx).Debug().Int64("user_id", userID).Time("expires_at", session.ExpiresAt).Msg("session started")
	return session, nil
}

func (s *sessionService) Get(ctx context.Context, sessionID string) (models.Session, error) {
	if sessionID == "" {
		return models.Session{}, ErrNoSession
	}

	session, err := s.storage.Get(ctx, sessionID)
	if errors.Is(err, store.ErrSessionNotFound) {
		return models.Session{}, ErrNoSession
	}
	if err != nil {
		return models.Session{}, fmt.Errorf("error loading session: %w", err)
	}

	return session, nil
}

func (s *sessionService) Refresh(ctx context.Context, session models.Session) (models.Session, error) {
	if !session.Permanent {
		return session, nil
	}

	session.ExpiresAt = s.now().Add(s.lifetime)

	if err := s.validator.Validate(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("invalid session: %w", err)
	}

	if err := s.storage.Save(ctx, session); err != nil {
		return models.Session{}, fmt.Errorf("error saving session: %w", err)
	}

	return session, nil
}

func (s *sessionService) Clear(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.storage.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("error deleting session: %w", err)
	}
	return nil
}

func (s *sessionService) PurgeExpired(ctx context.Context) (int, error) {
	n, err := s.storage.PurgeExpired(ctx)
	if err != nil {
		return 0, fmt.Errorf("error purging sessions: %w", err)
	}
	return n, nil
}
