// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
)

// minSecretKeyLength is the shortest accepted SECRET_KEY, in bytes.
const minSecretKeyLength = 32

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or an error wrapping one of the
// ErrInvalid* sentinels otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Environment != EnvDevelopment && cfg.Environment != EnvProduction {
		return ErrUnknownEnvironment
	}

	if _, err := cfg.ZerologLevel(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidAppConfigs, err)
	}

	if len(cfg.SecretKey) < minSecretKeyLength {
		return fmt.Errorf("%w: SECRET_KEY must be at least %d bytes", ErrInvalidAppConfigs, minSecretKeyLength)
	}

	if err := cfg.Session.validate(); err != nil {
		return err
	}

	if err := cfg.Storage.DB.validate(cfg.Environment); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}

func (s Session) validate() error {
	if s.CookieName == "" {
		return fmt.Errorf("%w: empty cookie name", ErrInvalidSessionConfigs)
	}

	if s.Lifetime <= 0 {
		return fmt.Errorf("%w: lifetime must be positive", ErrInvalidSessionConfigs)
	}

	sameSite, err := s.SameSite()
	if err != nil {
		return err
	}

	// browsers drop SameSite=None cookies that are not Secure
	if sameSite == http.SameSiteNoneMode && !s.CookieSecure {
		return fmt.Errorf("%w: SameSite=None requires a secure cookie", ErrInvalidSessionConfigs)
	}

	if s.RedisAddress == "" && s.JanitorInterval <= 0 {
		return fmt.Errorf("%w: janitor interval must be positive", ErrInvalidSessionConfigs)
	}

	return nil
}

func (db DB) validate(environment string) error {
	switch db.Driver {
	case "pgx":
		if db.DSN != "" {
			return nil
		}
		if db.Host == "" || db.Name == "" || db.User == "" {
			return fmt.Errorf("%w: database host, name and user are required", ErrInvalidStorageConfigs)
		}
		if environment == EnvProduction && db.Password == "" {
			return fmt.Errorf("%w: DATABASE_PASSWORD is required in production", ErrInvalidStorageConfigs)
		}
	case "sqlite3":
		if db.DSN == "" && db.Name == "" {
			return fmt.Errorf("%w: sqlite database file is required", ErrInvalidStorageConfigs)
		}
	default:
		return fmt.Errorf("%w: unsupported driver %q", ErrInvalidStorageConfigs, db.Driver)
	}

	return nil
}

// SameSite converts CookieSameSite to its net/http value. Matching is
// case-insensitive; an empty value means the browser default.
func (s Session) SameSite() (http.SameSite, error) {
	switch strings.ToLower(s.CookieSameSite) {
	case "":
		return http.SameSiteDefaultMode, nil
	case "lax":
		return http.SameSiteLaxMode, nil
	case "strict":
		return http.SameSiteStrictMode, nil
	case "none":
		return http.SameSiteNoneMode, nil
	default:
		return http.SameSiteDefaultMode, fmt.Errorf("%w: unknown SameSite policy %q", ErrInvalidSessionConfigs, s.CookieSameSite)
	}
}

// ZerologLevel parses LogLevel. An empty value is rejected so that a
// misspelled variable does not silently disable logging.
func (cfg *StructuredConfig) ZerologLevel() (zerolog.Level, error) {
	if cfg.LogLevel == "" {
		return zerolog.NoLevel, fmt.Errorf("empty log level")
	}

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		return zerolog.NoLevel, err
	}

	return level, nil
}
