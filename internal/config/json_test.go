// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"log_level": "info",
		"secret_key": "json-secret",
		"session": {
			"cookie_name": "quizsession",
			"cookie_samesite": "Strict",
			"lifetime": "1h",
			"redis_address": "localhost:6379",
			"redis_db": 2,
			"janitor_interval": "30s"
		},
		"storage": {
			"db": {
				"driver": "sqlite3",
				"name": "/var/lib/web-quiz/quiz.db"
			}
		},
		"server": {
			"http_address": "localhost:5000",
			"request_timeout": "10s"
		},
		"cors": {
			"allowed_origins": ["http://localhost:3000"]
		}
	}`
	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	cfg, err := parseJSON(p)
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json-secret", cfg.SecretKey)
	assert.Equal(t, "quizsession", cfg.Session.CookieName)
	assert.Equal(t, "Strict", cfg.Session.CookieSameSite)
	assert.Equal(t, time.Hour, cfg.Session.Lifetime)
	assert.Equal(t, "localhost:6379", cfg.Session.RedisAddress)
	assert.Equal(t, 2, cfg.Session.RedisDB)
	assert.Equal(t, 30*time.Second, cfg.Session.JanitorInterval)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "/var/lib/web-quiz/quiz.db", cfg.Storage.DB.Name)
	assert.Equal(t, "localhost:5000", cfg.Server.HTTPAddress)
	assert.Equal(t, 10*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowedOrigins)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	p := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"server": `), 0o600))

	_, err := parseJSON(p)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"90s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000000000`, want: time.Second},
		{name: "bad string", input: `"soon"`, wantErr: true},
		{name: "bool", input: `true`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	data, err := json.Marshal(Duration(5 * time.Minute))
	require.NoError(t, err)
	assert.JSONEq(t, `"5m0s"`, string(data))
}
