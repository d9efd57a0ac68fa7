// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package session owns the authenticated session lifecycle: the
// durable access/refresh token store, the Manager that is the only
// writer of that store, and the Guard predicate that protected
// screens consult before mounting.
//
// The store is process-wide and multi-reader — the API client reads
// the access token on every call — but mutation happens exclusively
// through the Manager on explicit user-initiated login and logout.
// There is no passive expiry handling and no token refresh: the
// refresh token is persisted alongside the access token because the
// service issues the pair together, but nothing ever exchanges it.
// That is a documented limitation carried over from the production
// client, not an omission to fix here.
package session
