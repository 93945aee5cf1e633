// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package casing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnakeToCamel(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "user_id", want: "userId"},
		{in: "first_name", want: "firstName"},
		{in: "created_at", want: "createdAt"},
		{in: "username", want: "username"},
		{in: "a_b_c", want: "aBC"},
		{in: "double__underscore", want: "doubleUnderscore"},
		{in: "trailing_", want: "trailing"},
		{in: "_private_field", want: "_privateField"},
		{in: "address_line_2", want: "addressLine2"},
		{in: "", want: ""},
		{in: "école_nom", want: "écoleNom"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SnakeToCamel(tt.in))
		})
	}
}

func TestKeys_ConvertsNestedMaps(t *testing.T) {
	src := map[string]any{
		"user_id": int64(7),
		"home_address": map[string]any{
			"street_name": "Rua Augusta",
		},
		"tags": []string{"keep_as_is"},
	}

	got := Keys(src, SnakeToCamel)

	assert.Equal(t, map[string]any{
		"userId": int64(7),
		"homeAddress": map[string]any{
			"streetName": "Rua Augusta",
		},
		"tags": []string{"keep_as_is"},
	}, got)
	// the source is not mutated
	assert.Contains(t, src, "user_id")
}

func TestKeys_CustomConverter(t *testing.T) {
	got := Keys(map[string]any{"a": 1}, strings.ToUpper)
	assert.Equal(t, map[string]any{"A": 1}, got)
}

func TestKeys_Nil(t *testing.T) {
	assert.Nil(t, Keys(nil, SnakeToCamel))
}
