// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"context"
	"fmt"
)

// commentRequest is the wire payload for POST /form/{id}/comments.
type commentRequest struct {
	Text string `json:"text"`
}

// ListComments returns a form's comments in creation order, exactly
// as the service delivers them.
func (client *Client) ListComments(ctx context.Context, formID int64) ([]Comment, error) {
	var comments []Comment
	if err := client.get(ctx, fmt.Sprintf("/form/%d/comments", formID), &comments, true); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddComment appends a comment to a form and returns the created
// record. Empty-text rejection happens in the caller before any
// network call reaches here; the server would accept it.
func (client *Client) AddComment(ctx context.Context, formID int64, text string) (Comment, error) {
	var created Comment
	if err := client.post(ctx, fmt.Sprintf("/form/%d/comments", formID), commentRequest{Text: text}, &created, true); err != nil {
		return Comment{}, err
	}
	return created, nil
}
