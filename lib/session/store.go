// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/nutritech-agro/agroq/lib/secret"
)

// ErrNoSession reports that no session exists in durable storage.
var ErrNoSession = errors.New("no session found — run \"agroq login\" first")

// Session is the persisted credential pair. It exists iff the access
// token is present in the store. The refresh token is stored because
// login issues the pair together; the client never exchanges it.
type Session struct {
	// AccessToken proves the user's identity to the service.
	AccessToken string `json:"access"`

	// RefreshToken is persisted but unused (no refresh rotation).
	RefreshToken string `json:"refresh"`
}

// FilePath returns the session file location. Checks the
// AGROQ_SESSION_FILE environment variable first, then falls back to
// ~/.config/agroq/session.json (respecting XDG_CONFIG_HOME).
func FilePath() string {
	if envPath := os.Getenv("AGROQ_SESSION_FILE"); envPath != "" {
		return envPath
	}

	configDirectory := os.Getenv("XDG_CONFIG_HOME")
	if configDirectory == "" {
		homeDirectory, err := os.UserHomeDir()
		if err != nil {
			// Fallback — this should rarely happen.
			return filepath.Join("/tmp", "agroq-session.json")
		}
		configDirectory = filepath.Join(homeDirectory, ".config")
	}
	return filepath.Join(configDirectory, "agroq", "session.json")
}

// Store is the file-backed session store. Reads happen on every API
// call; writes happen only through the Manager on login and logout.
// The mutex covers the read-modify window within this process — the
// only ordering guarantee needed is "latest write visible to next
// read".
type Store struct {
	mu   sync.Mutex
	path string
}

// NewStore creates a store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the backing file path.
func (store *Store) Path() string { return store.path }

// Load reads the persisted session. Returns ErrNoSession when the
// file does not exist or holds no access token.
func (store *Store) Load() (*Session, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	return store.load()
}

func (store *Store) load() (*Session, error) {
	data, err := os.ReadFile(store.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("reading session file %s: %w", store.path, err)
	}
	defer secret.Zero(data)

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", store.path, err)
	}
	if session.AccessToken == "" {
		return nil, ErrNoSession
	}
	return &session, nil
}

// Save persists both tokens together. The parent directory is created
// with mode 0700 and the file written with mode 0600 — it holds
// credentials.
func (store *Store) Save(session *Session) error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if session == nil || session.AccessToken == "" {
		return fmt.Errorf("refusing to save a session without an access token")
	}

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session: %w", err)
	}
	data = append(data, '\n')
	defer secret.Zero(data)

	directory := filepath.Dir(store.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}
	if err := os.WriteFile(store.path, data, 0600); err != nil {
		return fmt.Errorf("writing session file %s: %w", store.path, err)
	}
	return nil
}

// Clear removes the session file. Clearing an already-absent session
// is not an error.
func (store *Store) Clear() error {
	store.mu.Lock()
	defer store.mu.Unlock()

	if err := os.Remove(store.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session file %s: %w", store.path, err)
	}
	return nil
}

// Exists reports whether a session with an access token is present.
// Presence only — no validity check, no network call.
func (store *Store) Exists() bool {
	store.mu.Lock()
	defer store.mu.Unlock()
	_, err := store.load()
	return err == nil
}

// AccessToken implements the API client's token source. Every
// authenticated call reads the latest persisted token.
func (store *Store) AccessToken() (string, error) {
	store.mu.Lock()
	defer store.mu.Unlock()
	session, err := store.load()
	if err != nil {
		return "", err
	}
	return session.AccessToken, nil
}
