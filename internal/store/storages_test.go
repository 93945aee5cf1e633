// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/web-quiz/internal/config"
	"github.com/MKhiriev/web-quiz/internal/logger"
)

func sqliteConfig() *config.StructuredConfig {
	return &config.StructuredConfig{
		Storage: config.Storage{DB: config.DB{Driver: "sqlite3", DSN: ":memory:"}},
	}
}

func TestNewStorages_MemorySessions(t *testing.T) {
	storages, err := NewStorages(context.Background(), sqliteConfig(), logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.IsType(t, &memorySessionStorage{}, storages.SessionStorage)
	assert.NotNil(t, storages.UserRepository)
}

func TestNewStorages_RedisSessions(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig()
	cfg.Session.RedisAddress = mr.Addr()

	storages, err := NewStorages(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)
	defer storages.Close()

	assert.IsType(t, &redisSessionStorage{}, storages.SessionStorage)
}

func TestNewStorages_RedisUnreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := sqliteConfig()
	cfg.Session.RedisAddress = mr.Addr()
	mr.Close()

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrSessionStorageUnavailable)
}

func TestNewStorages_BadDriver(t *testing.T) {
	cfg := sqliteConfig()
	cfg.Storage.DB.Driver = "oracle"

	_, err := NewStorages(context.Background(), cfg, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}
