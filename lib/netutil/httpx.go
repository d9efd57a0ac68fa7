// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package netutil provides HTTP response I/O helpers for the agroq
// API client.
//
// All body reads are bounded at MaxBodySize so a misbehaving server
// cannot exhaust client memory. These helpers are for JSON API
// responses only; the Q&A service has no streaming endpoints.
package netutil

import (
	"encoding/json"
	"fmt"
	"io"
)

// MaxBodySize bounds API response body reads: 8 MB. Form listings and
// comment threads are orders of magnitude smaller; the limit exists
// only to cap pathological responses.
const MaxBodySize int64 = 8 << 20

// ReadBody reads a JSON API response body up to MaxBodySize bytes.
// Use instead of io.ReadAll when reading HTTP response bodies.
func ReadBody(body io.Reader) ([]byte, error) {
	return io.ReadAll(io.LimitReader(body, MaxBodySize))
}

// DecodeBody reads a response body (up to MaxBodySize bytes) and
// JSON-decodes it into v.
func DecodeBody(body io.Reader, v any) error {
	data, err := ReadBody(body)
	if err != nil {
		return fmt.Errorf("reading response body: %w", err)
	}
	return json.Unmarshal(data, v)
}

// ErrorText reads an HTTP error response body for diagnostic log
// messages. Read errors are ignored — a partial or empty body is
// still useful in a log line.
func ErrorText(body io.Reader) string {
	data, _ := io.ReadAll(io.LimitReader(body, MaxBodySize))
	return string(data)
}
