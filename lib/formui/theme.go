// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the agroq TUI. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected listing row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Alert bar severities.
	AlertErrorForeground   lipgloss.Color
	AlertSuccessForeground lipgloss.Color

	// Inline field validation messages on the signup screen.
	FieldErrorForeground lipgloss.Color

	// Topic accent in the listing and detail header.
	TopicForeground lipgloss.Color

	// Modal overlay background.
	ModalBackground lipgloss.Color
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	AlertErrorForeground:   lipgloss.Color("196"), // red
	AlertSuccessForeground: lipgloss.Color("114"), // green

	FieldErrorForeground: lipgloss.Color("203"), // light red

	TopicForeground: lipgloss.Color("114"), // green, the crop accent

	ModalBackground: lipgloss.Color("237"),
}
