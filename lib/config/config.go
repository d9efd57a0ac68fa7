// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package config provides configuration loading for the agroq client.
//
// Sources, in increasing precedence:
//   - built-in defaults
//   - a YAML config file, only when explicitly named by the
//     AGROQ_CONFIG environment variable or the --config flag (no
//     discovery, no hidden fallbacks)
//   - AGROQ_* environment variables, with a .env file in the working
//     directory loaded first when present
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultBaseURL points at a local development server, matching the
// service's own development default.
const DefaultBaseURL = "http://127.0.0.1:8000/api/accounts"

// Config is the agroq client configuration.
type Config struct {
	// BaseURL is the root URL of the Q&A service API, including the
	// base path.
	BaseURL string `yaml:"base_url" env:"AGROQ_BASE_URL"`

	// SessionFile overrides the session file location. Empty means
	// the well-known path (see session.FilePath).
	SessionFile string `yaml:"session_file" env:"AGROQ_SESSION_FILE"`
}

// Load builds the configuration. filePath is the --config flag value;
// when empty, AGROQ_CONFIG names the file instead, and when that is
// also empty no file is read at all.
func Load(filePath string) (*Config, error) {
	config := &Config{BaseURL: DefaultBaseURL}

	if filePath == "" {
		filePath = os.Getenv("AGROQ_CONFIG")
	}
	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", filePath, err)
		}
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", filePath, err)
		}
	}

	// A .env in the working directory feeds the environment parse
	// below. Its absence is the normal case.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	if err := env.Parse(config); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}

	if config.BaseURL == "" {
		return nil, fmt.Errorf("base URL must not be empty")
	}
	return config, nil
}
