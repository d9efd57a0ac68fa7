// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package api is the typed REST client for the Nutritech Agro Q&A
// service.
//
// The client attaches a bearer token from an injected [TokenSource] to
// every authenticated call, so repositories never reach into global
// state for credentials. Failures map to a small taxonomy: a missing
// credential surfaces as *TokenError before any network I/O, a
// rejected credential or any other non-2xx response surfaces as
// *APIError, classified with [IsAuth], [IsNotFound], and
// [FieldErrors].
//
// There is no retry, no backoff, and no response caching: every
// operation is exactly one request, and a failure is terminal for that
// attempt. The user re-triggers the action if they want another try.
package api
