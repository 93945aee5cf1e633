// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast
var testArgon2Params = Argon2Params{Memory: 1024, Time: 1, Parallelism: 1, SaltLength: 16, KeyLength: 32}

func TestHashPassword_Format(t *testing.T) {
	hash, err := HashPassword("abc", testArgon2Params)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(hash, "$argon2id$v=19$m=1024,t=1,p=1$"), hash)
	assert.Len(t, strings.Split(hash, "$"), 6)
}

func TestHashPassword_Salted(t *testing.T) {
	first, err := HashPassword("abc", testArgon2Params)
	require.NoError(t, err)
	second, err := HashPassword("abc", testArgon2Params)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestVerifyPassword(t *testing.T) {
	hash, err := HashPassword("abc", testArgon2Params)
	require.NoError(t, err)

	ok, err := VerifyPassword("abc", hash)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = VerifyPassword("abd", hash)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = VerifyPassword("", hash)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyPassword_Malformed(t *testing.T) {
	tests := []struct {
		name string
		hash string
	}{
		{"empty", ""},
		{"plain text", "abc"},
		{"wrong algorithm", "$argon2i$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"wrong version", "$argon2id$v=16$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"bad params", "$argon2id$v=19$m=x,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"zero params", "$argon2id$v=19$m=0,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"memory out of range", "$argon2id$v=19$m=4294967295,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"memory overflow", "$argon2id$v=19$m=99999999999,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"time out of range", "$argon2id$v=19$m=1024,t=4294967295,p=1$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"parallelism out of range", "$argon2id$v=19$m=1024,t=1,p=255$c2FsdHNhbHRzYWx0c2FsdA$a2V5"},
		{"bad salt", "$argon2id$v=19$m=1024,t=1,p=1$!!!$a2V5"},
		{"empty key", "$argon2id$v=19$m=1024,t=1,p=1$c2FsdHNhbHRzYWx0c2FsdA$"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, err := VerifyPassword("abc", tt.hash)
			assert.ErrorIs(t, err, ErrInvalidPasswordHash)
			assert.False(t, ok)
		})
	}
}

func TestVerifyPassword_UpperBoundsAccepted(t *testing.T) {
	p := Argon2Params{Memory: 1024, Time: maxArgon2Time, Parallelism: maxArgon2Parallelism, SaltLength: 16, KeyLength: 32}
	hash, err := HashPassword("abc", p)
	require.NoError(t, err)

	ok, err := VerifyPassword("abc", hash)
	require.NoError(t, err)
	assert.True(t, ok)
}
