// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"context"
	"log/slog"
	"strings"

	"github.com/nutritech-agro/agroq/lib/alert"
	"github.com/nutritech-agro/agroq/lib/api"
)

// FieldErrors maps a signup field name to its validation messages.
// Keys are the wire field names: email, username, password,
// confirmPassword (the last is client-side only and never sent).
type FieldErrors map[string][]string

// add appends a message for a field.
func (fields FieldErrors) add(field, message string) {
	fields[field] = append(fields[field], message)
}

// merge copies server-returned messages into the set.
func (fields FieldErrors) merge(server map[string][]string) {
	for field, messages := range server {
		fields[field] = append(fields[field], messages...)
	}
}

// ValidateSignup runs the local signup checks. All failures are
// collected — no short-circuiting — so the user sees every problem at
// once. Returns an empty (nil-safe) set when everything passes.
func ValidateSignup(email, username, password, confirm string) FieldErrors {
	fields := make(FieldErrors)
	if !strings.Contains(email, "@") {
		fields.add("email", "Invalid email format")
	}
	if len(strings.TrimSpace(username)) < 3 {
		fields.add("username", "Username must be at least 3 characters long")
	}
	if len(password) < 6 {
		fields.add("password", "Password must be at least 6 characters long")
	}
	if password != confirm {
		fields.add("confirmPassword", "Passwords do not match")
	}
	if len(fields) == 0 {
		return nil
	}
	return fields
}

// Manager owns credential submission and is the single writer of the
// session store. Repositories and screens read the store; only the
// Manager mutates it.
type Manager struct {
	client *api.Client
	store  *Store
	alerts *alert.State
	logger *slog.Logger
}

// NewManager wires the manager to the API client, the store it
// exclusively writes, and the alert slot it reports outcomes to.
func NewManager(client *api.Client, store *Store, alerts *alert.State, logger *slog.Logger) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{client: client, store: store, alerts: alerts, logger: logger}
}

// Store returns the session store (for read-side consumers: the API
// client's token source and the Guard).
func (manager *Manager) Store() *Store { return manager.store }

// Login submits credentials. On success both tokens are persisted
// together and a success alert is written. On failure an error alert
// is written and any previously persisted session is left untouched —
// a failed attempt to switch accounts must not log the user out.
func (manager *Manager) Login(ctx context.Context, email, password string) error {
	tokens, err := manager.client.Login(ctx, email, password)
	if err != nil {
		manager.logger.Debug("login rejected", "error", err)
		manager.alerts.Errorf("Login failed")
		return err
	}

	if err := manager.store.Save(&Session{
		AccessToken:  tokens.Access,
		RefreshToken: tokens.Refresh,
	}); err != nil {
		manager.alerts.Errorf("Login failed")
		return err
	}

	manager.alerts.Successf("Login successful")
	return nil
}

// Signup registers a new account. Local validation runs first; any
// failure means no network call and the field errors are returned
// without touching the alert slot (they render inline, per field).
// On a server rejection the server's field errors merge into the set
// and an error alert is written. On success a success alert is
// written — no session is established; the user logs in separately.
func (manager *Manager) Signup(ctx context.Context, email, username, password, confirm string) (FieldErrors, error) {
	if fields := ValidateSignup(email, username, password, confirm); fields != nil {
		return fields, nil
	}

	if err := manager.client.Signup(ctx, email, username, password); err != nil {
		manager.logger.Debug("signup rejected", "error", err)
		manager.alerts.Errorf("Signup failed")
		fields := make(FieldErrors)
		fields.merge(api.FieldErrors(err))
		if len(fields) == 0 {
			fields = nil
		}
		return fields, err
	}

	manager.alerts.Successf("Signup successful! Please log in.")
	return nil, nil
}

// Logout clears the persisted tokens unconditionally. No network
// call; whether to confirm first is the caller's concern.
func (manager *Manager) Logout() error {
	return manager.store.Clear()
}
