// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Session is server-side per-client state. The client only holds the
// signed ID.
type Session struct {
	ID     string `json:"id"`
	UserID int64  `json:"user_id"`

	// Permanent sessions get a cookie Max-Age; others end with the browser.
	Permanent bool `json:"permanent"`

	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

// Expired reports whether the session is no longer valid at now.
func (s Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}

// TTL returns the remaining lifetime at now, never negative.
func (s Session) TTL(now time.Time) time.Duration {
	if ttl := s.ExpiresAt.Sub(now); ttl > 0 {
		return ttl
	}
	return 0
}
