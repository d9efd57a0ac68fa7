// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "time"

// Form is a submitted agronomy question. ID is server-assigned and
// immutable; every other field is replaced wholesale by an update.
type Form struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Region    string    `json:"region"`
	Place     string    `json:"place"`
	Topic     string    `json:"topic"`
	Question  string    `json:"question"`
	CreatedAt time.Time `json:"created_at"`
}

// FormDraft is the caller-supplied portion of a form, used for both
// create and update (the service replaces all fields on update).
type FormDraft struct {
	Email    string `json:"email"`
	Region   string `json:"region"`
	Place    string `json:"place"`
	Topic    string `json:"topic"`
	Question string `json:"question"`
}

// Comment is one advice entry on a form. Comments are append-only:
// once created they are never edited or removed, and FormID never
// changes.
type Comment struct {
	ID        int64     `json:"id"`
	FormID    int64     `json:"form"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// TokenPair is the access/refresh credential pair issued by a
// successful login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Topics is the fixed set of question topics the service accepts, in
// the order the production service presents them.
var Topics = []string{
	"Engrais solides",
	"Engrais spéciaux hydrosolubles",
	"Correcteurs de carence",
	"Biostimulants",
}

// ValidTopic reports whether topic is one of the fixed choices.
func ValidTopic(topic string) bool {
	for _, candidate := range Topics {
		if candidate == topic {
			return true
		}
	}
	return false
}
