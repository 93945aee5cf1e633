// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
)

// Storages aggregates every storage backend the services depend on.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	SessionStorage SessionStorage
}

// NewStorages connects to the database, applies migrations and selects the
// session backend: Redis when an address is configured, memory otherwise.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger) (*Storages, error) {
	db, err := NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}

	var sessions SessionStorage
	if cfg.Session.RedisAddress != "" {
		client, err := NewRedisClient(ctx, cfg.Session, log)
		if err != nil {
			db.Close()
			return nil, err
		}
		sessions = NewRedisSessionStorage(client, log)
	} else {
		sessions = NewMemorySessionStorage(log)
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		SessionStorage: sessions,
	}, nil
}

// Close releases the session backend and the database pool.
func (s *Storages) Close() error {
	return errors.Join(s.SessionStorage.Close(), s.DB.Close())
}
