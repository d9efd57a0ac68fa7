// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"log/slog"

	"github.com/nutritech-agro/agroq/lib/alert"
	"github.com/nutritech-agro/agroq/lib/api"
	"github.com/nutritech-agro/agroq/lib/config"
	"github.com/nutritech-agro/agroq/lib/session"
)

// App bundles the collaborators every subcommand needs: resolved
// configuration, the session store, the API client reading tokens from
// it, the session manager writing to it, and the shared alert slot.
type App struct {
	Config  *config.Config
	Store   *session.Store
	Client  *api.Client
	Manager *session.Manager
	Alerts  *alert.State
	Logger  *slog.Logger
}

// NewApp loads configuration and wires the client stack. configPath is
// the --config flag value; empty means environment-only resolution.
func NewApp(configPath string, logger *slog.Logger) (*App, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, Internal("load configuration: %w", err)
	}

	sessionPath := cfg.SessionFile
	if sessionPath == "" {
		sessionPath = session.FilePath()
	}
	store := session.NewStore(sessionPath)

	client, err := api.NewClient(api.Config{
		BaseURL: cfg.BaseURL,
		Tokens:  store,
		Logger:  logger,
	})
	if err != nil {
		return nil, Internal("configure API client: %w", err)
	}

	alerts := alert.NewState()
	return &App{
		Config:  cfg,
		Store:   store,
		Client:  client,
		Manager: session.NewManager(client, store, alerts, logger),
		Alerts:  alerts,
		Logger:  logger,
	}, nil
}
