// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/nutritech-agro/agroq/lib/netutil"
)

// TokenSource supplies the bearer token for authenticated calls. The
// session store implements it; the store is multi-reader while only
// the session manager writes, so no coordination happens here.
type TokenSource interface {
	// AccessToken returns the current access token, or an error when
	// no session exists.
	AccessToken() (string, error)
}

// Config holds configuration for creating a Client.
type Config struct {
	// BaseURL is the root URL for API requests, including any base
	// path (e.g. "http://127.0.0.1:8000/api/accounts"). Required.
	BaseURL string

	// Tokens supplies the bearer token for authenticated endpoints.
	// Required for form and comment operations; login and signup work
	// without it.
	Tokens TokenSource

	// HTTPClient is used for all requests. Defaults to
	// http.DefaultClient.
	HTTPClient *http.Client

	// Logger receives request failures and raw server error detail.
	// Defaults to slog.Default(). Server detail goes here and never
	// into user-facing alert text.
	Logger *slog.Logger
}

// Client is the typed Q&A service client.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	logger     *slog.Logger
}

// NewClient creates a service client from the given configuration.
func NewClient(config Config) (*Client, error) {
	if config.BaseURL == "" {
		return nil, fmt.Errorf("api: BaseURL is required")
	}
	parsed, err := url.Parse(config.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("api: invalid base URL %q", config.BaseURL)
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		baseURL:    strings.TrimRight(config.BaseURL, "/"),
		httpClient: httpClient,
		tokens:     config.Tokens,
		logger:     logger,
	}, nil
}

// do executes one API request. The path is relative to the base URL.
// When authenticated is true the bearer token is attached; a missing
// token fails the call with *TokenError before any network I/O.
//
// Exactly one request is sent per call — no retry, no backoff. On a
// non-2xx response the parsed *APIError is returned and the raw body
// is logged, never surfaced. On success the response is returned with
// its body still open; the caller decodes and closes it.
func (client *Client) do(ctx context.Context, method, path string, requestBody any, authenticated bool) (*http.Response, error) {
	var bodyReader io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return nil, fmt.Errorf("api: encoding request body: %w", err)
		}
		bodyReader = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, client.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("api: creating request: %w", err)
	}

	if authenticated {
		if client.tokens == nil {
			return nil, &TokenError{Err: fmt.Errorf("no token source configured")}
		}
		token, err := client.tokens.AccessToken()
		if err != nil {
			return nil, &TokenError{Err: err}
		}
		request.Header.Set("Authorization", "Bearer "+token)
	}

	request.Header.Set("Accept", "application/json")
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}

	response, err := client.httpClient.Do(request)
	if err != nil {
		return nil, fmt.Errorf("api: %s %s: %w", method, path, err)
	}

	if response.StatusCode < 200 || response.StatusCode >= 300 {
		defer response.Body.Close()
		body := netutil.ErrorText(response.Body)
		client.logger.Debug("request failed",
			"method", method,
			"path", path,
			"status", response.StatusCode,
			"body", body,
		)
		return nil, parseAPIError(response.StatusCode, []byte(body))
	}

	return response, nil
}

// get executes a GET request and decodes the JSON response into result.
func (client *Client) get(ctx context.Context, path string, result any, authenticated bool) error {
	response, err := client.do(ctx, http.MethodGet, path, nil, authenticated)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	return netutil.DecodeBody(response.Body, result)
}

// post executes a POST request and, when result is non-nil, decodes
// the JSON response into it.
func (client *Client) post(ctx context.Context, path string, requestBody, result any, authenticated bool) error {
	response, err := client.do(ctx, http.MethodPost, path, requestBody, authenticated)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if result != nil {
		return netutil.DecodeBody(response.Body, result)
	}
	return nil
}

// put executes a PUT request and decodes the JSON response into result.
func (client *Client) put(ctx context.Context, path string, requestBody, result any) error {
	response, err := client.do(ctx, http.MethodPut, path, requestBody, true)
	if err != nil {
		return err
	}
	defer response.Body.Close()
	if result != nil {
		return netutil.DecodeBody(response.Body, result)
	}
	return nil
}

// delete executes a DELETE request, discarding any response body.
func (client *Client) delete(ctx context.Context, path string) error {
	response, err := client.do(ctx, http.MethodDelete, path, nil, true)
	if err != nil {
		return err
	}
	return response.Body.Close()
}
