// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package session

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "agroq", "session.json"))
}

func TestLoadMissingFile(t *testing.T) {
	store := testStore(t)
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
	if store.Exists() {
		t.Error("Exists = true with no file")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	store := testStore(t)
	if err := store.Save(&Session{AccessToken: "T1", RefreshToken: "T2"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	loaded, err := store.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if loaded.AccessToken != "T1" || loaded.RefreshToken != "T2" {
		t.Errorf("loaded = %+v", loaded)
	}
	if !store.Exists() {
		t.Error("Exists = false after Save")
	}

	token, err := store.AccessToken()
	if err != nil || token != "T1" {
		t.Errorf("AccessToken = %q, %v", token, err)
	}
}

func TestSaveFileMode(t *testing.T) {
	store := testStore(t)
	if err := store.Save(&Session{AccessToken: "T1", RefreshToken: "T2"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	info, err := os.Stat(store.Path())
	if err != nil {
		t.Fatal(err)
	}
	if mode := info.Mode().Perm(); mode != 0600 {
		t.Errorf("session file mode = %o, want 0600", mode)
	}
}

func TestSaveRejectsEmptyAccessToken(t *testing.T) {
	store := testStore(t)
	if err := store.Save(&Session{RefreshToken: "T2"}); err == nil {
		t.Fatal("expected error saving session without access token")
	}
}

func TestLoadEmptyAccessToken(t *testing.T) {
	store := testStore(t)
	if err := os.MkdirAll(filepath.Dir(store.Path()), 0700); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(store.Path(), []byte(`{"access": "", "refresh": "T2"}`), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Load(); !errors.Is(err, ErrNoSession) {
		t.Fatalf("err = %v, want ErrNoSession", err)
	}
}

func TestClear(t *testing.T) {
	store := testStore(t)
	if err := store.Save(&Session{AccessToken: "T1"}); err != nil {
		t.Fatal(err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.Exists() {
		t.Error("Exists = true after Clear")
	}
	// Clearing again is not an error.
	if err := store.Clear(); err != nil {
		t.Errorf("second Clear: %v", err)
	}
}

func TestFilePathEnvOverride(t *testing.T) {
	t.Setenv("AGROQ_SESSION_FILE", "/tmp/custom-session.json")
	if got := FilePath(); got != "/tmp/custom-session.json" {
		t.Errorf("FilePath = %q", got)
	}
}

func TestFilePathXDG(t *testing.T) {
	t.Setenv("AGROQ_SESSION_FILE", "")
	t.Setenv("XDG_CONFIG_HOME", "/home/u/.cfg")
	if got := FilePath(); got != filepath.Join("/home/u/.cfg", "agroq", "session.json") {
		t.Errorf("FilePath = %q", got)
	}
}
