// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package casing converts field names between the storage naming
// convention (snake_case) and the client naming convention (camelCase).
//
// Everything here is a pure function; it is applied to repository output
// right before serialization and knows nothing about users or sessions.
package casing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Converter maps a source field name to its client-facing form.
type Converter func(string) string

// SnakeToCamel converts "first_name" to "firstName". Leading underscores are
// kept, repeated underscores collapse, and the first word keeps its case.
func SnakeToCamel(s string) string {
	trimmed := strings.TrimLeft(s, "_")
	prefix := s[:len(s)-len(trimmed)]

	parts := strings.Split(trimmed, "_")
	var b strings.Builder
	b.Grow(len(s))
	b.WriteString(prefix)

	first := true
	for _, part := range parts {
		if part == "" {
			continue
		}
		if first {
			b.WriteString(part)
			first = false
			continue
		}
		r, size := utf8.DecodeRuneInString(part)
		b.WriteRune(unicode.ToUpper(r))
		b.WriteString(part[size:])
	}

	return b.String()
}

// Keys returns a copy of src with every key passed through conv. Nested
// maps are converted too; values are otherwise shared.
func Keys(src map[string]any, conv Converter) map[string]any {
	if src == nil {
		return nil
	}

	dst := make(map[string]any, len(src))
	for k, v := range src {
		if nested, ok := v.(map[string]any); ok {
			v = Keys(nested, conv)
		}
		dst[conv(k)] = v
	}

	return dst
}
