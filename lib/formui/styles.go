// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/charmbracelet/lipgloss"

// styles holds the lipgloss styles derived from a Theme. Computed once
// at model construction so view code never rebuilds styles per frame.
type styles struct {
	Normal       lipgloss.Style
	Faint        lipgloss.Style
	Selected     lipgloss.Style
	Header       lipgloss.Style
	Help         lipgloss.Style
	AlertError   lipgloss.Style
	AlertSuccess lipgloss.Style
	FieldError   lipgloss.Style
	Topic        lipgloss.Style
	Modal        lipgloss.Style
}

func newStyles(theme Theme) styles {
	return styles{
		Normal:       lipgloss.NewStyle().Foreground(theme.NormalText),
		Faint:        lipgloss.NewStyle().Foreground(theme.FaintText),
		Selected:     lipgloss.NewStyle().Foreground(theme.SelectedForeground).Background(theme.SelectedBackground),
		Header:       lipgloss.NewStyle().Foreground(theme.HeaderForeground).Bold(true),
		Help:         lipgloss.NewStyle().Foreground(theme.HelpText),
		AlertError:   lipgloss.NewStyle().Foreground(theme.AlertErrorForeground).Bold(true),
		AlertSuccess: lipgloss.NewStyle().Foreground(theme.AlertSuccessForeground).Bold(true),
		FieldError:   lipgloss.NewStyle().Foreground(theme.FieldErrorForeground),
		Topic:        lipgloss.NewStyle().Foreground(theme.TopicForeground),
		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.BorderColor).
			Padding(1, 2),
	}
}
