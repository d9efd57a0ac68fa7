// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// staticTokens is a TokenSource that always yields the same token.
type staticTokens string

func (tokens staticTokens) AccessToken() (string, error) { return string(tokens), nil }

// noTokens is a TokenSource with no session.
type noTokens struct{}

var errNoSessionTest = errors.New("no session file")

func (noTokens) AccessToken() (string, error) { return "", errNoSessionTest }

// newTestClient creates a Client backed by the given httptest.Server
// with a static bearer token.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		Tokens:     staticTokens("test-token"),
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return client
}

func TestNewClientRequiresBaseURL(t *testing.T) {
	if _, err := NewClient(Config{}); err == nil {
		t.Fatal("expected error for missing base URL")
	}
}

func TestNewClientRejectsBadURL(t *testing.T) {
	if _, err := NewClient(Config{BaseURL: "not a url"}); err == nil {
		t.Fatal("expected error for malformed base URL")
	}
}

func TestBearerHeaderInjection(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`[]`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	if _, err := client.ListForms(context.Background()); err != nil {
		t.Fatalf("ListForms: %v", err)
	}
	if receivedAuth != "Bearer test-token" {
		t.Errorf("Authorization = %q, want %q", receivedAuth, "Bearer test-token")
	}
}

func TestMissingTokenFailsBeforeNetwork(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		requests++
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL:    server.URL,
		Tokens:     noTokens{},
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ListForms(context.Background())
	var tokenError *TokenError
	if !errors.As(err, &tokenError) {
		t.Fatalf("err = %v, want *TokenError", err)
	}
	if !errors.Is(err, errNoSessionTest) {
		t.Error("TokenError should preserve the source error chain")
	}
	if !IsAuth(err) {
		t.Error("IsAuth should classify a TokenError as an auth failure")
	}
	if requests != 0 {
		t.Errorf("server saw %d requests, want 0", requests)
	}
}

func TestLoginSkipsBearer(t *testing.T) {
	var receivedAuth string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		receivedAuth = request.Header.Get("Authorization")
		writer.Header().Set("Content-Type", "application/json")
		writer.Write([]byte(`{"access":"T1","refresh":"T2"}`))
	}))
	defer server.Close()

	// No token source at all: login must still work.
	client, err := NewClient(Config{BaseURL: server.URL, HTTPClient: server.Client()})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	tokens, err := client.Login(context.Background(), "a@b.com", "secret")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if receivedAuth != "" {
		t.Errorf("login sent Authorization = %q, want none", receivedAuth)
	}
	if tokens.Access != "T1" || tokens.Refresh != "T2" {
		t.Errorf("tokens = %+v", tokens)
	}
}

func TestServerErrorClassification(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantAuth   bool
		wantNotFnd bool
		wantMsg    string
	}{
		{
			name:     "rejected credential",
			status:   401,
			body:     `{"error": "Invalid email or password"}`,
			wantAuth: true,
			wantMsg:  "Invalid email or password",
		},
		{
			name:     "forbidden",
			status:   403,
			body:     `{"detail": "Authentication credentials were not provided."}`,
			wantAuth: true,
			wantMsg:  "Authentication credentials were not provided.",
		},
		{
			name:       "missing form",
			status:     404,
			body:       `{"error": "Form not found"}`,
			wantNotFnd: true,
			wantMsg:    "Form not found",
		},
		{
			name:    "unstructured body",
			status:  500,
			body:    "proxy timeout",
			wantMsg: "proxy timeout",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				writer.Write([]byte(test.body))
			}))
			defer server.Close()

			client := newTestClient(t, server)
			_, err := client.GetForm(context.Background(), 1)
			if err == nil {
				t.Fatal("expected error")
			}
			if got := IsAuth(err); got != test.wantAuth {
				t.Errorf("IsAuth = %v, want %v", got, test.wantAuth)
			}
			if got := IsNotFound(err); got != test.wantNotFnd {
				t.Errorf("IsNotFound = %v, want %v", got, test.wantNotFnd)
			}
			var apiError *APIError
			if !errors.As(err, &apiError) {
				t.Fatalf("err = %T, want *APIError", err)
			}
			if apiError.Message != test.wantMsg {
				t.Errorf("Message = %q, want %q", apiError.Message, test.wantMsg)
			}
		})
	}
}

func TestErrorBodyLoggedAtDebug(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusInternalServerError)
		writer.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer server.Close()

	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{Level: slog.LevelDebug}))
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		Tokens:     staticTokens("test-token"),
		HTTPClient: server.Client(),
		Logger:     logger,
	})
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	_, err = client.ListForms(context.Background())
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("error = %v, want *APIError", err)
	}
	if apiErr.Message != "database unavailable" {
		t.Errorf("Message = %q, want the parsed error field", apiErr.Message)
	}
	if !strings.Contains(logBuffer.String(), "database unavailable") {
		t.Errorf("debug log missing the raw error body:\n%s", logBuffer.String())
	}
}

func TestFieldErrorParsing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusBadRequest)
		writer.Write([]byte(`{"email": ["user with this email already exists."], "username": ["This field may not be blank."]}`))
	}))
	defer server.Close()

	client := newTestClient(t, server)
	err := client.Signup(context.Background(), "a@b.com", "", "abcdef")
	fields := FieldErrors(err)
	if fields == nil {
		t.Fatalf("FieldErrors = nil, err = %v", err)
	}
	if got := fields["email"][0]; got != "user with this email already exists." {
		t.Errorf("email error = %q", got)
	}
	if got := fields["username"][0]; got != "This field may not be blank." {
		t.Errorf("username error = %q", got)
	}
}

func TestTransportErrorWrapped(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := newTestClient(t, server)
	server.Close() // Connection refused from here on.

	_, err := client.ListForms(context.Background())
	if err == nil {
		t.Fatal("expected transport error")
	}
	if IsAuth(err) || IsNotFound(err) {
		t.Error("transport failure must not classify as auth or not-found")
	}
}
