// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLogger_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("web-quiz-server")
	l.Logger = l.Output(&buf)

	l.Info().Msg("started")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "web-quiz-server", entry["role"])
	assert.Equal(t, "started", entry["message"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry, "func")
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

func TestLeveled_DropsLowerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("leveled")
	l.Logger = l.Output(&buf)

	info := l.Leveled(zerolog.InfoLevel)
	info.Debug().Msg("hidden")
	assert.Empty(t, buf.String())

	info.Info().Msg("shown")
	assert.Equal(t, "shown", decodeEntry(t, &buf)["message"])
}

func TestLeveled_KeepsParentUntouched(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger("parent")
	l.Logger = l.Output(&buf)

	_ = l.Leveled(zerolog.ErrorLevel)
	l.Debug().Msg("still debug")

	assert.Equal(t, "still debug", decodeEntry(t, &buf)["message"])
}

func TestNop_DiscardsOutput(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)

	var buf bytes.Buffer
	l.Logger = l.Output(&buf)
	l.Error().Msg("discarded")

	assert.Empty(t, buf.String())
}

func TestGetChildLogger_InheritsRole(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLogger("inherited-role")
	parent.Logger = parent.Output(&buf)

	child := parent.GetChildLogger()
	require.NotSame(t, parent, child)
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})
	child.Info().Msg("child")

	entry := decodeEntry(t, &buf)
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "abc", entry["trace_id"])
}

func TestFromContext_NeverNil(t *testing.T) {
	require.NotNil(t, FromContext(context.Background()))
}

func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()

	req := httptest.NewRequest(http.MethodGet, "/user/current", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-1", decodeEntry(t, &buf)["trace_id"])
}
