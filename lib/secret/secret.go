// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package secret provides handling helpers for passwords and tokens:
// memory scrubbing and interactive/file/stdin password sourcing.
//
// Secrets live in ordinary heap memory — agroq persists tokens to the
// session file immediately, so locked pages buy nothing here — but
// intermediate copies are zeroed as soon as they are no longer needed.
package secret

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Zero overwrites b with zero bytes. Call on any buffer that held a
// password or token once it has been consumed.
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// ReadFromPath reads a secret from a file path, or from stdin if path
// is "-". Trailing newlines are stripped (files written by echo or
// printf pipelines usually end with one). Returns an error if the
// source is empty after stripping.
func ReadFromPath(path string) ([]byte, error) {
	var data []byte
	if path == "-" {
		scanner := bufio.NewScanner(os.Stdin)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("reading stdin: %w", err)
			}
			return nil, fmt.Errorf("stdin is empty")
		}
		data = append(data, scanner.Bytes()...)
	} else {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	trimmed := bytes.TrimRight(data, "\r\n")
	if len(trimmed) == 0 {
		Zero(data)
		return nil, fmt.Errorf("secret source %s is empty", path)
	}
	return trimmed, nil
}

// Prompt reads a password interactively with terminal echo disabled.
// The prompt text is written to w (normally stderr, so password entry
// works even when stdout is redirected). Fails when stdin is not a
// terminal — non-interactive callers must use ReadFromPath.
func Prompt(w io.Writer, label string) ([]byte, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("no terminal available for interactive %s prompt", label)
	}
	fmt.Fprintf(w, "%s: ", label)
	password, err := term.ReadPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", label, err)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%s is empty", label)
	}
	return password, nil
}
