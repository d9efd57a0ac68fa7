// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package formui implements the interactive terminal UI for the
// Nutritech Agro Q&A service: login and signup screens, the form
// listing with a create modal, and the form detail screen with
// in-place editing and the comment thread.
//
// The model is screen-based. Home and detail are protected: mounting
// either consults the session Guard, and a denial replaces the screen
// with login — a replacing navigation, so no "back" path leads into a
// protected screen without a session. Network calls run as bubbletea
// commands stamped with the navigation generation that issued them;
// a result that arrives after the user has navigated away is
// discarded rather than applied to a screen that no longer exists.
//
// Operation outcomes land in the single-slot alert bar (last write
// wins). Raw server error detail goes to the logger, never to the
// alert text.
package formui
