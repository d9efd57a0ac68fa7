// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands assembles the complete agroq command tree.
package commands

import (
	"fmt"
	"runtime/debug"

	"github.com/nutritech-agro/agroq/cmd/agroq/account"
	"github.com/nutritech-agro/agroq/cmd/agroq/browse"
	"github.com/nutritech-agro/agroq/cmd/agroq/cli"
	formcmd "github.com/nutritech-agro/agroq/cmd/agroq/form"
)

// Root builds and returns the complete agroq CLI command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "agroq",
		Description: `agroq: terminal client for the Nutritech Agro agronomy Q&A service.

Submit agronomy question forms, follow the expert comments on them,
and manage your session — either through one-shot commands or the
interactive terminal client.`,
		Subcommands: []*cli.Command{
			account.LoginCommand(),
			account.SignupCommand(),
			account.LogoutCommand(),
			account.StatusCommand(),
			browse.Command(),
			formcmd.Command(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("agroq %s\n", version())
					return nil
				},
			},
		},
		Examples: []cli.Example{
			{
				Description: "Authenticate (saves the session locally)",
				Command:     "agroq login fatima@example.com",
			},
			{
				Description: "Open the interactive client",
				Command:     "agroq browse",
			},
			{
				Description: "List all forms from a script",
				Command:     "agroq form list --json",
			},
		},
	}
}

func version() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "(devel)"
}
