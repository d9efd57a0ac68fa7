// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package secret

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/term"
)

func TestZero(t *testing.T) {
	data := []byte("hunter2")
	Zero(data)
	for i, b := range data {
		if b != 0 {
			t.Fatalf("byte %d not zeroed: %v", i, b)
		}
	}
}

func TestReadFromPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("s3cret\n"), 0600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFromPath(path)
	if err != nil {
		t.Fatalf("ReadFromPath: %v", err)
	}
	if string(data) != "s3cret" {
		t.Errorf("secret = %q, want %q", data, "s3cret")
	}
}

func TestReadFromPathStripsCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("s3cret\r\n"), 0600); err != nil {
		t.Fatal(err)
	}

	data, err := ReadFromPath(path)
	if err != nil {
		t.Fatalf("ReadFromPath: %v", err)
	}
	if string(data) != "s3cret" {
		t.Errorf("secret = %q, want %q", data, "s3cret")
	}
}

func TestReadFromPathEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "password")
	if err := os.WriteFile(path, []byte("\n\n"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := ReadFromPath(path); err == nil {
		t.Fatal("expected error for empty secret file")
	}
}

func TestReadFromPathMissing(t *testing.T) {
	if _, err := ReadFromPath(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPromptRequiresTerminal(t *testing.T) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		t.Skip("stdin is a terminal")
	}
	var sb strings.Builder
	_, err := Prompt(&sb, "Password")
	if err == nil {
		t.Fatal("expected an error without a terminal")
	}
	// The label is interpolated bare: callers pass "Password", not
	// "Password: ", so the message carries exactly one colon-free label.
	want := "no terminal available for interactive Password prompt"
	if err.Error() != want {
		t.Fatalf("error = %q, want %q", err.Error(), want)
	}
}
