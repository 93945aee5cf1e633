// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
	"github.com/MKhiriev/web-quiz/models"
)

const sessionKeyPrefix = "session:"

// redisSessionStorage keeps sessions as JSON values whose Redis TTL equals
// the remaining session lifetime, so expiry needs no janitor.
type redisSessionStorage struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisSessionStorage wraps an existing client.
func NewRedisSessionStorage(client *redis.Client, logger *logger.Logger) SessionStorage {
	logger.Debug().Msg("creating redis session storage")
	return &redisSessionStorage{
		client: client,
		logger: logger,
	}
}

// NewRedisClient connects to the Redis instance named in cfg and pings it.
func NewRedisClient(ctx context.Context, cfg config.Session, log *logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddress,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("error connecting redis (ping)")
		client.Close()
		return nil, fmt.Errorf("%w: %w", ErrSessionStorageUnavailable, err)
	}
	log.Info().Str("func", "NewRedisClient").Str("address", cfg.RedisAddress).Msg("connected to redis successfully")

	return client, nil
}

func (s *redisSessionStorage) key(sessionID string) string {
	return sessionKeyPrefix + sessionID
}

func (s *redisSessionStorage) Save(ctx context.Context, session models.Session) error {
	ttl := session.TTL(time.Now())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	if err := s.client.Set(ctx, s.key(session.ID), data, ttl).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Save").Msg("error saving session")
		return fmt.Errorf("%w: %w", ErrSessionStorageUnavailable, err)
	}

	return nil
}

func (s *redisSessionStorage) Get(ctx context.Context, sessionID string) (models.Session, error) {
	data, err := s.client.Get(ctx, s.key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.Session{}, ErrSessionNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Get").Msg("error reading session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrSessionStorageUnavailable, err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrEncodingSession, err)
	}

	// the key TTL has a one second resolution
	if session.Expired(time.Now()) {
		return models.Session{}, ErrSessionNotFound
	}

	return session, nil
}

func (s *redisSessionStorage) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, s.key(sessionID)).Err(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*redisSessionStorage.Delete").Msg("error deleting session")
		return fmt.Errorf("%w: %w", ErrSessionStorageUnavailable, err)
	}
	return nil
}

func (s *redisSessionStorage) PurgeExpired(context.Context) (int, error) {
	return 0, nil
}

func (s *redisSessionStorage) Close() error {
	return s.client.Close()
}
