// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors the JSON configuration file layout.
// Boolean switches are env-only: a JSON false could not be told apart from
// "not set" when the file is merged over the profile.
type StructuredJSONConfig struct {
	LogLevel  string `json:"log_level"`
	SecretKey string `json:"secret_key"`

	Session struct {
		CookieName      string   `json:"cookie_name"`
		CookieSameSite  string   `json:"cookie_samesite"`
		Lifetime        Duration `json:"lifetime"`
		RedisAddress    string   `json:"redis_address"`
		RedisPassword   string   `json:"redis_password"`
		RedisDB         int      `json:"redis_db"`
		JanitorInterval Duration `json:"janitor_interval"`
	} `json:"session,omitempty"`

	Storage struct {
		DB struct {
			Driver   string `json:"driver"`
			Host     string `json:"host"`
			Port     int    `json:"port"`
			Name     string `json:"name"`
			User     string `json:"user"`
			Password string `json:"password"`
			DSN      string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		LogLevel:  jsonCfg.LogLevel,
		SecretKey: jsonCfg.SecretKey,
		Session: Session{
			CookieName:      jsonCfg.Session.CookieName,
			CookieSameSite:  jsonCfg.Session.CookieSameSite,
			Lifetime:        time.Duration(jsonCfg.Session.Lifetime),
			RedisAddress:    jsonCfg.Session.RedisAddress,
			RedisPassword:   jsonCfg.Session.RedisPassword,
			RedisDB:         jsonCfg.Session.RedisDB,
			JanitorInterval: time.Duration(jsonCfg.Session.JanitorInterval),
		},
		Storage: Storage{
			DB: DB{
				Driver:   jsonCfg.Storage.DB.Driver,
				Host:     jsonCfg.Storage.DB.Host,
				Port:     jsonCfg.Storage.DB.Port,
				Name:     jsonCfg.Storage.DB.Name,
				User:     jsonCfg.Storage.DB.User,
				Password: jsonCfg.Storage.DB.Password,
				DSN:      jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		CORS: CORS{
			AllowedOrigins: jsonCfg.CORS.AllowedOrigins,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
