// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package session

// Guard is the route-protection predicate. It reads only the presence
// of a stored access token — not its validity — and performs no
// network I/O. Every protected screen consults the same Guard instead
// of re-deriving the check; when it denies, the caller replaces the
// current screen with the login screen (a replacing navigation, so no
// history entry leads back into the protected screen).
type Guard struct {
	store *Store
}

// NewGuard creates a guard over the given store.
func NewGuard(store *Store) Guard {
	return Guard{store: store}
}

// Allow reports whether protected screens may mount.
func (guard Guard) Allow() bool {
	return guard.store.Exists()
}
