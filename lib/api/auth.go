// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import "context"

// loginRequest is the wire payload for POST /login.
type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// signupRequest is the wire payload for POST /signup. The confirm
// field never leaves the client; matching is validated locally.
type signupRequest struct {
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login submits credentials and returns the issued token pair. A 401
// (wrong credentials) surfaces as *APIError; use [IsAuth].
func (client *Client) Login(ctx context.Context, email, password string) (TokenPair, error) {
	var tokens TokenPair
	err := client.post(ctx, "/login", loginRequest{Email: email, Password: password}, &tokens, false)
	if err != nil {
		return TokenPair{}, err
	}
	return tokens, nil
}

// Signup registers a new account. It does not establish a session —
// the caller logs in separately afterwards. Validation failures carry
// field-keyed messages; use [FieldErrors].
func (client *Client) Signup(ctx context.Context, email, username, password string) error {
	return client.post(ctx, "/signup", signupRequest{
		Email:    email,
		Username: username,
		Password: password,
	}, nil, false)
}
