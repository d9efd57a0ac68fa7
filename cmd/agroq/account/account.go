// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package account implements the session lifecycle commands: login,
// signup, logout, and status.
package account

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/nutritech-agro/agroq/cmd/agroq/cli"
	"github.com/nutritech-agro/agroq/lib/secret"
	"github.com/nutritech-agro/agroq/lib/session"
)

const requestTimeout = 30 * time.Second

// commonFlags holds the flags shared by every account subcommand.
type commonFlags struct {
	ConfigPath   string
	PasswordFile string
}

func (flags *commonFlags) flagSet(name string, withPassword bool) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")
	if withPassword {
		flagSet.StringVar(&flags.PasswordFile, "password-file", "",
			"path to a file containing the password, or - to read stdin (default: prompt)")
	}
	return flagSet
}

// printFieldErrors writes per-field validation messages in a stable
// order. The field keys match session.ValidateSignup and the server's
// rejection payload.
func printFieldErrors(w io.Writer, fields session.FieldErrors) {
	for _, field := range []string{"email", "username", "password", "confirmPassword"} {
		for _, message := range fields[field] {
			fmt.Fprintf(w, "%s: %s\n", field, message)
		}
	}
}

// readPassword resolves the password per the --password-file flag:
// empty prompts interactively, "-" reads stdin, anything else is a
// file path. The caller must Zero the returned buffer.
func readPassword(passwordFile, label string) ([]byte, error) {
	if passwordFile == "" {
		return secret.Prompt(os.Stderr, label)
	}
	return secret.ReadFromPath(passwordFile)
}

// LoginCommand returns the "login" command.
func LoginCommand() *cli.Command {
	var flags commonFlags

	return &cli.Command{
		Name:    "login",
		Summary: "Authenticate and save the session locally",
		Description: `Log in to the Nutritech Agro service and save the session locally.

After login, commands like "agroq form list" use the saved session
transparently. The session file is stored at
~/.config/agroq/session.json (or $AGROQ_SESSION_FILE if set, or
$XDG_CONFIG_HOME/agroq/session.json) with mode 0600 since it contains
an access token.`,
		Usage: "agroq login <email> [flags]",
		Examples: []cli.Example{
			{
				Description: "Log in interactively (prompts for password)",
				Command:     "agroq login fatima@example.com",
			},
			{
				Description: "Log in with password from a file",
				Command:     "agroq login fatima@example.com --password-file /path/to/password",
			},
		},
		Flags: func() *pflag.FlagSet { return flags.flagSet("login", true) },
		Run: func(args []string) error {
			if len(args) < 1 {
				return cli.Validation("email is required\n\nUsage: agroq login <email> [flags]")
			}
			email := args[0]
			if len(args) > 1 {
				return cli.Validation("unexpected argument: %s", args[1])
			}

			logger := cli.NewCommandLogger().With("command", "login")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}

			password, err := readPassword(flags.PasswordFile, "Password")
			if err != nil {
				return cli.Internal("read password: %w", err)
			}
			defer secret.Zero(password)

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if err := app.Manager.Login(ctx, email, string(password)); err != nil {
				return cli.ClassifyAPI(err)
			}

			fmt.Printf("Logged in as %s. Session saved to %s\n", email, app.Store.Path())
			return nil
		},
	}
}

// SignupCommand returns the "signup" command.
func SignupCommand() *cli.Command {
	var flags commonFlags

	return &cli.Command{
		Name:    "signup",
		Summary: "Register a new account",
		Description: `Register a new account with the Nutritech Agro service.

Signup never logs you in: on success, run "agroq login" with the new
credentials. The password is prompted twice unless --password-file is
given, in which case the confirmation is skipped.`,
		Usage: "agroq signup <email> <username> [flags]",
		Examples: []cli.Example{
			{
				Description: "Register interactively",
				Command:     "agroq signup fatima@example.com fatima",
			},
		},
		Flags: func() *pflag.FlagSet { return flags.flagSet("signup", true) },
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("email and username are required\n\nUsage: agroq signup <email> <username> [flags]")
			}
			email, username := args[0], args[1]
			if len(args) > 2 {
				return cli.Validation("unexpected argument: %s", args[2])
			}

			logger := cli.NewCommandLogger().With("command", "signup")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}

			password, err := readPassword(flags.PasswordFile, "Password")
			if err != nil {
				return cli.Internal("read password: %w", err)
			}
			defer secret.Zero(password)

			confirm := password
			if flags.PasswordFile == "" {
				confirm, err = secret.Prompt(os.Stderr, "Confirm password")
				if err != nil {
					return cli.Internal("read password confirmation: %w", err)
				}
				defer secret.Zero(confirm)
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			fields, err := app.Manager.Signup(ctx, email, username, string(password), string(confirm))
			if err != nil {
				return cli.ClassifyAPI(err)
			}
			if len(fields) > 0 {
				printFieldErrors(os.Stderr, fields)
				return cli.Validation("signup rejected")
			}

			fmt.Println("Signup successful! Please log in.")
			return nil
		},
	}
}

// LogoutCommand returns the "logout" command.
func LogoutCommand() *cli.Command {
	var flags commonFlags

	return &cli.Command{
		Name:    "logout",
		Summary: "Discard the saved session",
		Description: `Remove the saved session file.

Logout is purely local: the server is never contacted and the tokens
are not revoked, they are simply forgotten.`,
		Usage: "agroq logout [flags]",
		Flags: func() *pflag.FlagSet { return flags.flagSet("logout", false) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "logout")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}
			if err := app.Manager.Logout(); err != nil {
				return cli.Internal("clear session: %w", err)
			}
			fmt.Println("Logged out.")
			return nil
		},
	}
}

// StatusCommand returns the "status" command.
func StatusCommand() *cli.Command {
	var flags commonFlags

	return &cli.Command{
		Name:    "status",
		Summary: "Show whether a session is saved",
		Usage:   "agroq status [flags]",
		Flags:   func() *pflag.FlagSet { return flags.flagSet("status", false) },
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "status")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}
			if app.Store.Exists() {
				fmt.Printf("Session present at %s\n", app.Store.Path())
			} else {
				fmt.Printf("No session. Run \"agroq login\" to authenticate.\n")
			}
			return nil
		},
	}
}
