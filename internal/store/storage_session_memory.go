// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/models"
)

// memorySessionStorage is a process-local [SessionStorage]. Expired entries
// are invisible to Get and are removed by PurgeExpired.
type memorySessionStorage struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
	now      func() time.Time
	logger   *logger.Logger
}

// NewMemorySessionStorage returns an empty in-memory session storage.
func NewMemorySessionStorage(logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating in-memory session storage")
	return newMemorySessionStorage(logger, time.Now)
}

func newMemorySessionStorage(logger *logger.Logger, now func() time.Time) *memorySessionStorage {
	return &memorySessionStorage{
		sessions: make(map[string]models.Session),
		now:      now,
		logger:   logger,
	}
}

func (m *memorySessionStorage) Save(_ context.Context, session models.Session) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.sessions[session.ID] = session
	return nil
}

func (m *memorySessionStorage) Get(_ context.Context, sessionID string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	session, ok := m.sessions[sessionID]
	if !ok || session.Expired(m.now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (m *memorySessionStorage) Delete(_ context.Context, sessionID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.sessions, sessionID)
	return nil
}

func (m *memorySessionStorage) PurgeExpired(_ context.Context) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	purged := 0
	for id, session := range m.sessions {
		if session.Expired(now) {
			delete(m.sessions, id)
			purged++
		}
	}

	return purged, nil
}

func (m *memorySessionStorage) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	clear(m.sessions)
	return nil
}
