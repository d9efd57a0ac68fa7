// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutritech-agro/agroq/lib/api"
	"github.com/nutritech-agro/agroq/lib/session"
)

// Async results carry the navigation generation that issued them.
// Update discards any result whose generation no longer matches — the
// screen that asked for it is gone, and applying the result would
// mutate state the user has already left behind.

type loginResultMsg struct {
	generation int
	err        error
}

type signupResultMsg struct {
	generation int
	fields     session.FieldErrors
	err        error
}

type formsLoadedMsg struct {
	generation int
	forms      []api.Form
	err        error
}

type formCreatedMsg struct {
	generation int
	err        error
}

type formLoadedMsg struct {
	generation int
	form       api.Form
	err        error
}

type commentsLoadedMsg struct {
	generation int
	comments   []api.Comment
	err        error
}

type formUpdatedMsg struct {
	generation int
	form       api.Form
	err        error
}

type formDeletedMsg struct {
	generation int
	err        error
}

type commentAddedMsg struct {
	generation int
	comment    api.Comment
	err        error
}

func (model *Model) loginCmd(email, password string) tea.Cmd {
	generation := model.generation
	manager := model.manager
	return func() tea.Msg {
		err := manager.Login(context.Background(), email, password)
		return loginResultMsg{generation: generation, err: err}
	}
}

func (model *Model) signupCmd(email, username, password, confirm string) tea.Cmd {
	generation := model.generation
	manager := model.manager
	return func() tea.Msg {
		fields, err := manager.Signup(context.Background(), email, username, password, confirm)
		return signupResultMsg{generation: generation, fields: fields, err: err}
	}
}

func (model *Model) fetchFormsCmd() tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		forms, err := client.ListForms(context.Background())
		return formsLoadedMsg{generation: generation, forms: forms, err: err}
	}
}

func (model *Model) createFormCmd(draft api.FormDraft) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		_, err := client.CreateForm(context.Background(), draft)
		return formCreatedMsg{generation: generation, err: err}
	}
}

func (model *Model) fetchFormCmd(id int64) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		form, err := client.GetForm(context.Background(), id)
		return formLoadedMsg{generation: generation, form: form, err: err}
	}
}

func (model *Model) fetchCommentsCmd(id int64) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		comments, err := client.ListComments(context.Background(), id)
		return commentsLoadedMsg{generation: generation, comments: comments, err: err}
	}
}

func (model *Model) updateFormCmd(id int64, draft api.FormDraft) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		form, err := client.UpdateForm(context.Background(), id, draft)
		return formUpdatedMsg{generation: generation, form: form, err: err}
	}
}

func (model *Model) deleteFormCmd(id int64) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		err := client.DeleteForm(context.Background(), id)
		return formDeletedMsg{generation: generation, err: err}
	}
}

func (model *Model) addCommentCmd(id int64, text string) tea.Cmd {
	generation := model.generation
	client := model.client
	return func() tea.Msg {
		comment, err := client.AddComment(context.Background(), id, text)
		return commentAddedMsg{generation: generation, comment: comment, err: err}
	}
}
