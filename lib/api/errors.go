// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// APIError represents a non-2xx response from the Q&A service. The
// service returns either {"error": "..."} for single failures or a
// field-keyed map {field: [message, ...]} for validation failures.
type APIError struct {
	// StatusCode is the HTTP response status code.
	StatusCode int

	// Message is the top-level error description. For unstructured
	// bodies this is the raw body text; it is for logs only and must
	// never be shown in user-facing alert text.
	Message string

	// Fields contains field-keyed validation messages. Present on
	// 400 responses from /signup and the form endpoints.
	Fields map[string][]string
}

func (err *APIError) Error() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "api: HTTP %d", err.StatusCode)
	if err.Message != "" {
		fmt.Fprintf(&builder, ": %s", err.Message)
	}
	// Deterministic field order for stable log lines and tests.
	fields := make([]string, 0, len(err.Fields))
	for field := range err.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	for _, field := range fields {
		fmt.Fprintf(&builder, "; %s: %s", field, strings.Join(err.Fields[field], ", "))
	}
	return builder.String()
}

// TokenError reports that the token source produced no usable
// credential, so the request was never sent. This is the explicit
// "call issued without a session" variant: callers map it to a login
// redirect instead of a generic failure message.
type TokenError struct {
	Err error
}

func (err *TokenError) Error() string {
	return fmt.Sprintf("api: no usable session credential: %v", err.Err)
}

func (err *TokenError) Unwrap() error { return err.Err }

// IsAuth reports whether err means the caller has no valid session:
// either no credential was available locally (*TokenError) or the
// server rejected the one presented (401/403).
func IsAuth(err error) bool {
	var tokenError *TokenError
	if errors.As(err, &tokenError) {
		return true
	}
	var apiError *APIError
	return errors.As(err, &apiError) &&
		(apiError.StatusCode == 401 || apiError.StatusCode == 403)
}

// IsNotFound reports whether err is a 404 response — the requested
// form (or comment parent) does not exist server-side.
func IsNotFound(err error) bool {
	var apiError *APIError
	return errors.As(err, &apiError) && apiError.StatusCode == 404
}

// FieldErrors returns the field-keyed validation messages carried by
// err, or nil when err carries none.
func FieldErrors(err error) map[string][]string {
	var apiError *APIError
	if errors.As(err, &apiError) && len(apiError.Fields) > 0 {
		return apiError.Fields
	}
	return nil
}

// parseAPIError builds an *APIError from a status code and response
// body. Recognizes the service's two error shapes; anything else is
// kept verbatim in Message.
func parseAPIError(statusCode int, body []byte) *APIError {
	apiError := &APIError{StatusCode: statusCode}

	var single struct {
		Error   string `json:"error"`
		Detail  string `json:"detail"`
		Message string `json:"message"`
	}
	if json.Unmarshal(body, &single) == nil {
		switch {
		case single.Error != "":
			apiError.Message = single.Error
			return apiError
		case single.Detail != "":
			apiError.Message = single.Detail
			return apiError
		case single.Message != "":
			apiError.Message = single.Message
			return apiError
		}
	}

	var fields map[string][]string
	if json.Unmarshal(body, &fields) == nil && len(fields) > 0 {
		apiError.Fields = fields
		return apiError
	}

	apiError.Message = string(body)
	return apiError
}
