// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package cli provides the command-tree infrastructure shared by every
// agroq subcommand: dispatch with typo suggestions, structured help
// output, error classification for exit codes, and construction of the
// API client and session plumbing from configuration.
package cli
