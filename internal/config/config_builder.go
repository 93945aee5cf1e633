// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/gorilla/securecookie"
)

type configBuilder struct {
	args []string

	flags   *StructuredConfig
	base    *StructuredConfig
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder(args []string) *configBuilder {
	return &configBuilder{
		args:    args,
		configs: make([]*StructuredConfig, 0, 2),
	}
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}
	if b.base == nil {
		return nil, fmt.Errorf("error occured during building config: %w", ErrUnknownEnvironment)
	}

	config := b.base
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	config.pinProfile()

	if err := config.ensureSecretKey(); err != nil {
		return nil, err
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withFlags() *configBuilder {
	flags, err := ParseFlags(b.args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.flags = flags
	b.configs = append(b.configs, flags)
	return b
}

// withProfile selects the environment profile. The -env flag wins over the
// ENV variable.
func (b *configBuilder) withProfile() *configBuilder {
	name := ""
	if b.flags != nil {
		name = b.flags.Environment
	}
	if name == "" {
		name = os.Getenv("ENV")
	}
	if name == "" {
		name = defaultEnvironment
	}

	profile, err := Resolve(name)
	if err != nil {
		b.err = errors.Join(b.err, fmt.Errorf("%w: %q", err, name))
		return b
	}

	b.base = profile
	return b
}

// withEnv overlays environment variables on the selected profile. Variables
// that are not set leave the profile values untouched.
func (b *configBuilder) withEnv() *configBuilder {
	if b.base == nil {
		return b
	}

	if err := parseEnv(b.base); err != nil {
		b.err = errors.Join(b.err, err)
	}
	return b
}

func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	if b.base != nil && b.base.JSONFilePath != "" {
		jsonPath = b.base.JSONFilePath
	}
	if b.flags != nil && b.flags.JSONFilePath != "" {
		jsonPath = b.flags.JSONFilePath
	}

	if jsonPath != "" {
		jsonCfg, err := parseJSON(jsonPath)
		if err != nil {
			b.err = errors.Join(b.err, err)
			return b
		}
		b.configs = append(b.configs, jsonCfg)
	}

	return b
}

// pinProfile restores the values production fixes regardless of env, flags
// or JSON. Development keeps whatever the other sources set.
func (cfg *StructuredConfig) pinProfile() {
	if cfg.Environment != EnvProduction {
		return
	}

	fixed := production()
	cfg.Testing = fixed.Testing
	cfg.Debug = fixed.Debug
	cfg.Session.CookieName = fixed.Session.CookieName
	cfg.Session.CookieHTTPOnly = fixed.Session.CookieHTTPOnly
	cfg.Session.CookieSecure = fixed.Session.CookieSecure
	cfg.Session.CookieSameSite = fixed.Session.CookieSameSite
	cfg.Session.Lifetime = fixed.Session.Lifetime
}

// ensureSecretKey generates a throwaway signing key outside production.
// Production has to provide SECRET_KEY; validate rejects it otherwise.
func (cfg *StructuredConfig) ensureSecretKey() error {
	if cfg.SecretKey != "" || cfg.Environment == EnvProduction {
		return nil
	}

	key := securecookie.GenerateRandomKey(32)
	if key == nil {
		return fmt.Errorf("%w: cannot generate secret key", ErrInvalidAppConfigs)
	}

	cfg.SecretKey = hex.EncodeToString(key)
	cfg.secretGenerated = true
	return nil
}
