// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"strings"
	"testing"

	"github.com/spf13/pflag"
)

func TestExecuteDispatchesSubcommand(t *testing.T) {
	ran := false
	root := &Command{
		Name: "agroq",
		Subcommands: []*Command{
			{
				Name: "status",
				Run: func(args []string) error {
					ran = true
					return nil
				},
			},
		},
	}
	if err := root.Execute([]string{"status"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !ran {
		t.Fatal("subcommand did not run")
	}
}

func TestExecuteSuggestsClosestCommand(t *testing.T) {
	root := &Command{
		Name: "agroq",
		Subcommands: []*Command{
			{Name: "login", Run: func([]string) error { return nil }},
			{Name: "logout", Run: func([]string) error { return nil }},
		},
	}
	err := root.Execute([]string{"lgin"})
	if err == nil {
		t.Fatal("expected an error for an unknown command")
	}
	if !strings.Contains(err.Error(), `did you mean "login"`) {
		t.Fatalf("error = %q, want a login suggestion", err)
	}
}

func TestExecuteParsesFlags(t *testing.T) {
	var verbose bool
	var got []string
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.BoolVar(&verbose, "verbose", false, "")
			return flagSet
		},
		Run: func(args []string) error {
			got = args
			return nil
		},
	}
	if err := command.Execute([]string{"--verbose", "extra"}); err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if !verbose {
		t.Fatal("flag not parsed")
	}
	if len(got) != 1 || got[0] != "extra" {
		t.Fatalf("args = %v, want [extra]", got)
	}
}

func TestExecuteSuggestsClosestFlag(t *testing.T) {
	command := &Command{
		Name: "list",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.Bool("json", false, "")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}
	err := command.Execute([]string{"--jsno"})
	if err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
	if !strings.Contains(err.Error(), "--json") {
		t.Fatalf("error = %q, want a --json suggestion", err)
	}
}

func TestPrintHelpListsSubcommands(t *testing.T) {
	root := &Command{
		Name:    "agroq",
		Summary: "terminal client",
		Subcommands: []*Command{
			{Name: "login", Summary: "Authenticate"},
			{Name: "form", Summary: "Manage forms"},
		},
	}
	var sb strings.Builder
	root.PrintHelp(&sb)
	help := sb.String()
	for _, want := range []string{"login", "Authenticate", "form", "Manage forms"} {
		if !strings.Contains(help, want) {
			t.Errorf("help output missing %q", want)
		}
	}
}

func TestLevenshtein(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"", "abc", 3},
		{"abc", "abc", 0},
		{"lgin", "login", 1},
		{"form", "from", 2},
		{"kitten", "sitting", 3},
	}
	for _, test := range tests {
		if got := levenshtein(test.a, test.b); got != test.want {
			t.Errorf("levenshtein(%q, %q) = %d, want %d", test.a, test.b, got, test.want)
		}
	}
}
