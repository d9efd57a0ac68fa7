// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package form implements the one-shot form commands: list, show,
// create, update, delete, and comment.
package form

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/nutritech-agro/agroq/cmd/agroq/cli"
	"github.com/nutritech-agro/agroq/lib/api"
)

const requestTimeout = 30 * time.Second

// Command returns the "form" command group.
func Command() *cli.Command {
	return &cli.Command{
		Name:    "form",
		Summary: "Manage agronomy question forms",
		Subcommands: []*cli.Command{
			listCommand(),
			showCommand(),
			createCommand(),
			updateCommand(),
			deleteCommand(),
			commentCommand(),
		},
	}
}

func parseFormID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, cli.Validation("invalid form id %q", arg)
	}
	return id, nil
}

func listCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "list",
		Summary: "List all submitted forms",
		Usage:   "agroq form list [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("list", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}

			logger := cli.NewCommandLogger().With("command", "form/list")
			app, err := cli.NewApp(configPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			forms, err := app.Client.ListForms(ctx)
			if err != nil {
				return cli.ClassifyAPI(err)
			}

			if asJSON {
				if forms == nil {
					forms = []api.Form{}
				}
				return cli.WriteJSON(forms)
			}

			if len(forms) == 0 {
				fmt.Println("No forms.")
				return nil
			}
			tw := tabwriter.NewWriter(os.Stdout, 2, 0, 3, ' ', 0)
			fmt.Fprintln(tw, "ID\tTOPIC\tPLACE\tREGION\tCREATED")
			for _, form := range forms {
				fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
					form.ID, form.Topic, form.Place, form.Region,
					form.CreatedAt.Format("2006-01-02"))
			}
			return tw.Flush()
		},
	}
}

func showCommand() *cli.Command {
	var configPath string
	var asJSON bool

	return &cli.Command{
		Name:    "show",
		Summary: "Show one form with its comments",
		Usage:   "agroq form show <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("show", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
			flagSet.BoolVar(&asJSON, "json", false, "output as JSON")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one form id is required\n\nUsage: agroq form show <id>")
			}
			id, err := parseFormID(args[0])
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "form/show")
			app, err := cli.NewApp(configPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			form, err := app.Client.GetForm(ctx, id)
			if err != nil {
				return cli.ClassifyAPI(err)
			}
			comments, err := app.Client.ListComments(ctx, id)
			if err != nil {
				return cli.ClassifyAPI(err)
			}

			if asJSON {
				if comments == nil {
					comments = []api.Comment{}
				}
				return cli.WriteJSON(struct {
					Form     api.Form      `json:"form"`
					Comments []api.Comment `json:"comments"`
				}{form, comments})
			}

			fmt.Printf("Form #%d — %s\n", form.ID, form.Topic)
			fmt.Printf("From:      %s\n", form.Email)
			fmt.Printf("Location:  %s, %s\n", form.Place, form.Region)
			fmt.Printf("Submitted: %s\n", form.CreatedAt.Format("2006-01-02 15:04"))
			fmt.Printf("\n%s\n", form.Question)
			fmt.Printf("\nComments (%d):\n", len(comments))
			for _, comment := range comments {
				fmt.Printf("  [%s] %s\n",
					comment.CreatedAt.Format("2006-01-02 15:04"), comment.Text)
			}
			return nil
		},
	}
}

// draftFlags binds the form field flags shared by create and update.
type draftFlags struct {
	ConfigPath string
	Email      string
	Region     string
	Place      string
	Topic      string
	Question   string
}

func (flags *draftFlags) flagSet(name string) *pflag.FlagSet {
	flagSet := pflag.NewFlagSet(name, pflag.ContinueOnError)
	flagSet.StringVar(&flags.ConfigPath, "config", "", "path to a YAML configuration file")
	flagSet.StringVar(&flags.Email, "email", "", "contact email")
	flagSet.StringVar(&flags.Region, "region", "", "region name")
	flagSet.StringVar(&flags.Place, "place", "", "place within the region")
	flagSet.StringVar(&flags.Topic, "topic", "", "topic, one of: "+strings.Join(api.Topics, ", "))
	flagSet.StringVar(&flags.Question, "question", "", "the agronomy question")
	return flagSet
}

func createCommand() *cli.Command {
	var flags draftFlags

	return &cli.Command{
		Name:    "create",
		Summary: "Submit a new form",
		Usage:   "agroq form create --email <email> --region <region> --place <place> --topic <topic> --question <text>",
		Examples: []cli.Example{
			{
				Description: "Submit a question about biostimulants",
				Command:     `agroq form create --email fatima@example.com --region "Fès-Meknès" --place Meknès --topic Biostimulants --question "Which product suits young olive trees?"`,
			},
		},
		Flags: func() *pflag.FlagSet { return flags.flagSet("create") },
		Run: func(args []string) error {
			if len(args) > 0 {
				return cli.Validation("unexpected argument: %s", args[0])
			}
			draft := api.FormDraft{
				Email:    flags.Email,
				Region:   flags.Region,
				Place:    flags.Place,
				Topic:    flags.Topic,
				Question: flags.Question,
			}
			if draft.Email == "" || draft.Region == "" || draft.Place == "" ||
				draft.Topic == "" || draft.Question == "" {
				return cli.Validation("all of --email, --region, --place, --topic, --question are required")
			}
			if !api.ValidTopic(draft.Topic) {
				return cli.Validation("unknown topic %q, expected one of: %s",
					draft.Topic, strings.Join(api.Topics, ", "))
			}

			logger := cli.NewCommandLogger().With("command", "form/create")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			form, err := app.Client.CreateForm(ctx, draft)
			if err != nil {
				return cli.ClassifyAPI(err)
			}

			fmt.Printf("Form submitted successfully! (id %d)\n", form.ID)
			return nil
		},
	}
}

func updateCommand() *cli.Command {
	var flags draftFlags

	return &cli.Command{
		Name:    "update",
		Summary: "Replace the fields of an existing form",
		Description: `Replace the fields of an existing form.

Flags that are not given keep the form's current value: the form is
fetched first and the given flags are overlaid before the full record
is sent back.`,
		Usage: "agroq form update <id> [flags]",
		Flags: func() *pflag.FlagSet { return flags.flagSet("update") },
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one form id is required\n\nUsage: agroq form update <id> [flags]")
			}
			id, err := parseFormID(args[0])
			if err != nil {
				return err
			}
			if flags.Topic != "" && !api.ValidTopic(flags.Topic) {
				return cli.Validation("unknown topic %q, expected one of: %s",
					flags.Topic, strings.Join(api.Topics, ", "))
			}

			logger := cli.NewCommandLogger().With("command", "form/update")
			app, err := cli.NewApp(flags.ConfigPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			current, err := app.Client.GetForm(ctx, id)
			if err != nil {
				return cli.ClassifyAPI(err)
			}

			draft := api.FormDraft{
				Email:    current.Email,
				Region:   current.Region,
				Place:    current.Place,
				Topic:    current.Topic,
				Question: current.Question,
			}
			if flags.Email != "" {
				draft.Email = flags.Email
			}
			if flags.Region != "" {
				draft.Region = flags.Region
			}
			if flags.Place != "" {
				draft.Place = flags.Place
			}
			if flags.Topic != "" {
				draft.Topic = flags.Topic
			}
			if flags.Question != "" {
				draft.Question = flags.Question
			}

			if _, err := app.Client.UpdateForm(ctx, id, draft); err != nil {
				return cli.ClassifyAPI(err)
			}
			fmt.Println("Form updated successfully!")
			return nil
		},
	}
}

func deleteCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "delete",
		Summary: "Delete a form",
		Usage:   "agroq form delete <id> [flags]",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("delete", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) != 1 {
				return cli.Validation("exactly one form id is required\n\nUsage: agroq form delete <id>")
			}
			id, err := parseFormID(args[0])
			if err != nil {
				return err
			}

			logger := cli.NewCommandLogger().With("command", "form/delete")
			app, err := cli.NewApp(configPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if err := app.Client.DeleteForm(ctx, id); err != nil {
				return cli.ClassifyAPI(err)
			}
			fmt.Println("Form deleted successfully!")
			return nil
		},
	}
}

func commentCommand() *cli.Command {
	var configPath string

	return &cli.Command{
		Name:    "comment",
		Summary: "Add a comment to a form",
		Usage:   "agroq form comment <id> <text> [flags]",
		Examples: []cli.Example{
			{
				Description: "Comment on form 12",
				Command:     `agroq form comment 12 "Try a seaweed-based biostimulant in early spring."`,
			},
		},
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("comment", pflag.ContinueOnError)
			flagSet.StringVar(&configPath, "config", "", "path to a YAML configuration file")
			return flagSet
		},
		Run: func(args []string) error {
			if len(args) < 2 {
				return cli.Validation("form id and comment text are required\n\nUsage: agroq form comment <id> <text>")
			}
			id, err := parseFormID(args[0])
			if err != nil {
				return err
			}
			text := strings.Join(args[1:], " ")
			if strings.TrimSpace(text) == "" {
				return cli.Validation("comment text is empty")
			}

			logger := cli.NewCommandLogger().With("command", "form/comment")
			app, err := cli.NewApp(configPath, logger)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
			defer cancel()
			if _, err := app.Client.AddComment(ctx, id, text); err != nil {
				return cli.ClassifyAPI(err)
			}
			fmt.Println("Comment added successfully!")
			return nil
		},
	}
}
