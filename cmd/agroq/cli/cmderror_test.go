// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"errors"
	"testing"

	"github.com/nutritech-agro/agroq/lib/api"
)

func TestClassifyAPI(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Category
	}{
		{"missing token", &api.TokenError{Err: errors.New("no session")}, CategoryAuth},
		{"rejected token", &api.APIError{StatusCode: 401, Message: "token invalid"}, CategoryAuth},
		{"forbidden", &api.APIError{StatusCode: 403, Message: "forbidden"}, CategoryAuth},
		{"missing form", &api.APIError{StatusCode: 404, Message: "not found"}, CategoryNotFound},
		{"server failure", &api.APIError{StatusCode: 500, Message: "boom"}, CategoryInternal},
		{"plain error", errors.New("connection refused"), CategoryInternal},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			classified := ClassifyAPI(test.err)
			if classified.Category != test.want {
				t.Fatalf("category = %v, want %v", classified.Category, test.want)
			}
			if !errors.Is(classified, test.err) {
				t.Fatal("classification must preserve the error chain")
			}
		})
	}
}

func TestExitCodes(t *testing.T) {
	tests := []struct {
		category Category
		want     int
	}{
		{CategoryInternal, 1},
		{CategoryValidation, 2},
		{CategoryAuth, 3},
		{CategoryNotFound, 4},
	}
	for _, test := range tests {
		if got := test.category.ExitCode(); got != test.want {
			t.Errorf("ExitCode(%v) = %d, want %d", test.category, got, test.want)
		}
	}
}
