// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

// Package alert holds the single-slot status message shown after any
// user-initiated operation.
//
// The slot is last-write-wins: every operation outcome replaces
// whatever was there before. There is no queue, no deduplication, and
// no auto-dismiss timer — at most one message exists at any instant,
// and it stays until the next operation overwrites or clears it.
package alert

import "sync"

// Severity classifies a status message for rendering.
type Severity int

const (
	// Error marks a failed operation.
	Error Severity = iota
	// Success marks a completed operation.
	Success
)

// Message is one transient status line.
type Message struct {
	Text     string
	Severity Severity
}

// State is the single message slot. Safe for concurrent use: the TUI
// reads it on every render while command goroutines write outcomes.
type State struct {
	mu      sync.Mutex
	current *Message
}

// NewState returns an empty alert slot.
func NewState() *State {
	return &State{}
}

// Set unconditionally replaces the current message.
func (s *State) Set(text string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &Message{Text: text, Severity: severity}
}

// Errorf replaces the current message with an error-severity message.
func (s *State) Errorf(text string) { s.Set(text, Error) }

// Successf replaces the current message with a success-severity message.
func (s *State) Successf(text string) { s.Set(text, Success) }

// Clear empties the slot.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}

// Current returns the message in the slot, or nil when it is empty.
func (s *State) Current() *Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}
