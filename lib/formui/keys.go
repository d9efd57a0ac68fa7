// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the agroq TUI.
type KeyMap struct {
	// Listing navigation.
	Up   key.Binding
	Down key.Binding
	Open key.Binding

	// Screen navigation.
	Back key.Binding

	// Listing actions.
	Refresh key.Binding
	Create  key.Binding
	Logout  key.Binding

	// Detail actions.
	Edit    key.Binding
	Delete  key.Binding
	Comment key.Binding

	// Form field movement and submission (login, signup, create
	// modal, edit mode, comment input).
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding

	// Switch between the login and signup screens.
	SwitchAuth key.Binding

	Quit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style j/k
// navigation alongside arrow keys on the listing; Ctrl+D submits
// multi-field forms so plain Enter stays usable inside text areas.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	Open: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("Enter", "open"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc", "backspace"),
		key.WithHelp("Esc", "back"),
	),
	Refresh: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "refresh"),
	),
	Create: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "new form"),
	),
	Logout: key.NewBinding(
		key.WithKeys("L"),
		key.WithHelp("L", "logout"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "edit"),
	),
	Delete: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "delete"),
	),
	Comment: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "comment"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab"),
		key.WithHelp("Tab", "next field"),
	),
	PrevField: key.NewBinding(
		key.WithKeys("shift+tab"),
		key.WithHelp("S-Tab", "previous field"),
	),
	Submit: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("C-d", "submit"),
	),
	Cancel: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "cancel"),
	),
	SwitchAuth: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("C-s", "switch login/signup"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("C-c", "quit"),
	),
}
