// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// maxJSONBodySize caps request bodies read by [DecodeJSON].
const maxJSONBodySize = 1 << 20

// ErrMalformedJSON is returned by [DecodeJSON] for bodies that are not a
// single JSON value.
var ErrMalformedJSON = errors.New("malformed JSON body")

// WriteJSON serializes data to JSON and writes it with statusCode and a
// "Content-Type: application/json" header. A nil data writes the literal
// null.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON reads one JSON value from the request body into dst.
// Trailing data after the value is rejected.
func DecodeJSON(r *http.Request, dst any) error {
	decoder := json.NewDecoder(io.LimitReader(r.Body, maxJSONBodySize))

	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	if decoder.More() {
		return fmt.Errorf("%w: unexpected data after JSON value", ErrMalformedJSON)
	}

	return nil
}
