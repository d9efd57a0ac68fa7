// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"fmt"

	"github.com/nutritech-agro/agroq/lib/api"
)

// Category classifies a command failure for the process exit code.
type Category int

const (
	// CategoryInternal is an unexpected failure: a bug, I/O error, or
	// an unclassified server error.
	CategoryInternal Category = iota

	// CategoryValidation means the caller provided bad input.
	CategoryValidation

	// CategoryAuth means there is no usable session or the server
	// rejected the credential.
	CategoryAuth

	// CategoryNotFound means a referenced form does not exist.
	CategoryNotFound
)

// ExitCode returns the process exit code for the category.
func (category Category) ExitCode() int {
	switch category {
	case CategoryValidation:
		return 2
	case CategoryAuth:
		return 3
	case CategoryNotFound:
		return 4
	default:
		return 1
	}
}

// CommandError attaches a Category to an error so main can pick the
// exit code without string matching.
type CommandError struct {
	Category Category
	Err      error
}

func (e *CommandError) Error() string { return e.Err.Error() }

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode satisfies the interface main checks before printing.
func (e *CommandError) ExitCode() int { return e.Category.ExitCode() }

// Validation creates a validation error: the caller provided bad input.
func Validation(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryValidation, Err: fmt.Errorf(format, args...)}
}

// Internal creates an internal error: an unexpected failure.
func Internal(format string, args ...any) *CommandError {
	return &CommandError{Category: CategoryInternal, Err: fmt.Errorf(format, args...)}
}

// ClassifyAPI wraps an API call failure with the category derived from
// the error taxonomy: missing or rejected credentials map to auth,
// 404s to not-found, everything else to internal.
func ClassifyAPI(err error) *CommandError {
	switch {
	case api.IsAuth(err):
		return &CommandError{Category: CategoryAuth, Err: err}
	case api.IsNotFound(err):
		return &CommandError{Category: CategoryNotFound, Err: err}
	default:
		return &CommandError{Category: CategoryInternal, Err: err}
	}
}
