// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildFindCredentialsByUsername(t *testing.T) {
	tests := []struct {
		name      string
		builder   sq.StatementBuilderType
		wantQuery string
	}{
		{
			name:      "postgres placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
			wantQuery: "SELECT user_id, username, password_hash FROM users WHERE username = $1 LIMIT 1",
		},
		{
			name:      "sqlite placeholders",
			builder:   sq.StatementBuilder.PlaceholderFormat(sq.Question),
			wantQuery: "SELECT user_id, username, password_hash FROM users WHERE username = ? LIMIT 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildFindCredentialsByUsername(tt.builder, "alb")
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, []any{"alb"}, args)
		})
	}
}

func Test_buildFindUserByID(t *testing.T) {
	query, args, err := buildFindUserByID(sq.StatementBuilder.PlaceholderFormat(sq.Dollar), 42)
	require.NoError(t, err)

	assert.Equal(t, "SELECT user_id, username, first_name, last_name, email, created_at FROM users WHERE user_id = $1", query)
	assert.Equal(t, []any{int64(42)}, args)
}

func Test_buildFindUserByID_NeverSelectsPasswordHash(t *testing.T) {
	query, _, err := buildFindUserByID(sq.StatementBuilder, 1)
	require.NoError(t, err)
	assert.NotContains(t, query, "password_hash")
}
