// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package browse implements the interactive terminal client. It is the
// only part of the CLI that takes over the terminal, so it lives in its
// own package to keep the one-shot commands free of TUI dependencies.
package browse

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/nutritech-agro/agroq/cmd/agroq/cli"
	"github.com/nutritech-agro/agroq/lib/formui"
	"github.com/nutritech-agro/agroq/lib/session"
)

// Command returns the "browse" command.
func Command() *cli.Command {
	var configPath string
	var logPath string

	return &cli.Command{
		Name:    "browse",
		Summary: "Open the interactive terminal client",
		Description: `Open the interactive terminal client.

Without a saved session the client starts on the login screen;
otherwise it opens straight onto the form listing. All form and
comment operations are available from the keyboard, with key hints
shown at the bottom of every screen.`,
		Usage: "agroq browse [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("browse", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
			flagSet.StringVar(&logPath, "log-file", "", "append structured logs to this file (default: discard)")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			// The TUI owns the terminal, so logs go to a file or
			// nowhere; writing to stderr would corrupt the display.
			logger := slog.New(slog.DiscardHandler)
			if logPath != "" {
				logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return cli.Internal("open log file: %w", err)
				}
				defer logFile.Close()
				logger = slog.New(slog.NewJSONHandler(logFile, nil))
			}

			app, err := cli.NewApp(configPath, logger)
			if err != nil {
				return err
			}

			model := formui.NewModel(formui.Config{
				Client:  app.Client,
				Manager: app.Manager,
				Guard:   session.NewGuard(app.Store),
				Alerts:  app.Alerts,
				Logger:  logger,
			})

			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("run terminal client: %w", err)
			}
			return nil
		},
	}
}
