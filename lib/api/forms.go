// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// ListForms returns every form, in the order the service stores them.
// No client-side re-sorting and no pagination — the contract has
// neither.
func (client *Client) ListForms(ctx context.Context) ([]Form, error) {
	var forms []Form
	if err := client.get(ctx, "/forms", &forms, true); err != nil {
		return nil, err
	}
	return forms, nil
}

// CreateForm submits a new form and returns the created record with
// its server-assigned ID. Field completeness is the caller's concern;
// the service rejects incomplete drafts with field-keyed errors.
func (client *Client) CreateForm(ctx context.Context, draft FormDraft) (Form, error) {
	var created Form
	if err := client.post(ctx, "/create-form", draft, &created, true); err != nil {
		return Form{}, err
	}
	return created, nil
}

// GetForm fetches one form by ID. A missing form surfaces as a 404
// *APIError; use [IsNotFound].
func (client *Client) GetForm(ctx context.Context, id int64) (Form, error) {
	var form Form
	if err := client.get(ctx, fmt.Sprintf("/form/%d", id), &form, true); err != nil {
		return Form{}, err
	}
	return form, nil
}

// UpdateForm replaces every caller-supplied field of the form and
// returns the server's resulting record. The ID itself never changes.
func (client *Client) UpdateForm(ctx context.Context, id int64, draft FormDraft) (Form, error) {
	var updated Form
	if err := client.put(ctx, fmt.Sprintf("/form/%d", id), draft, &updated); err != nil {
		return Form{}, err
	}
	return updated, nil
}

// DeleteForm removes a form. After success the ID is gone for good —
// callers must navigate away from any view scoped to it.
func (client *Client) DeleteForm(ctx context.Context, id int64) error {
	return client.delete(ctx, fmt.Sprintf("/form/%d", id))
}
