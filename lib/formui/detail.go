// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutritech-agro/agroq/lib/api"
)

const (
	editFieldEmail = iota
	editFieldRegion
	editFieldPlace
	editFieldTopic
	editFieldQuestion
	editFieldCount
)

type detailState struct {
	id       int64
	form     *api.Form
	comments []api.Comment

	editing        bool
	editBusy       bool
	editFocus      int
	editInputs     [3]textinput.Model
	editTopicIndex int
	editQuestion   textarea.Model

	commentFocus bool
	commentBusy  bool
	commentInput textarea.Model
}

func newDetailState() detailState {
	var state detailState
	state.editInputs[editFieldEmail] = newField("Email", 0)
	state.editInputs[editFieldRegion] = newField("Region", 0)
	state.editInputs[editFieldPlace] = newField("Place", 0)
	state.editQuestion = textarea.New()
	state.editQuestion.SetHeight(4)
	state.editQuestion.ShowLineNumbers = false
	state.commentInput = textarea.New()
	state.commentInput.Placeholder = "Add a comment"
	state.commentInput.SetHeight(3)
	state.commentInput.ShowLineNumbers = false
	return state
}

// beginLoading clears everything carried over from a previous form so
// the view gates on the fresh fetch.
func (state *detailState) beginLoading() {
	state.form = nil
	state.comments = nil
	state.editing = false
	state.editBusy = false
	state.commentFocus = false
	state.commentBusy = false
	state.commentInput.Reset()
	state.commentInput.Blur()
}

func (state *detailState) setWidth(width int) {
	for i := range state.editInputs {
		state.editInputs[i].Width = width
	}
	state.editQuestion.SetWidth(width)
	state.commentInput.SetWidth(width)
}

// beginEdit seeds the edit buffers from the last committed form state.
// Cancelling discards the buffers, so the committed values survive an
// abandoned edit untouched.
func (state *detailState) beginEdit() {
	state.editInputs[editFieldEmail].SetValue(state.form.Email)
	state.editInputs[editFieldRegion].SetValue(state.form.Region)
	state.editInputs[editFieldPlace].SetValue(state.form.Place)
	state.editTopicIndex = 0
	for i, topic := range api.Topics {
		if topic == state.form.Topic {
			state.editTopicIndex = i
			break
		}
	}
	state.editQuestion.SetValue(state.form.Question)
	state.editing = true
	state.editBusy = false
	state.focusEditField(editFieldEmail)
}

func (state *detailState) focusEditField(index int) {
	state.editFocus = index
	for i := range state.editInputs {
		if i == index {
			state.editInputs[i].Focus()
		} else {
			state.editInputs[i].Blur()
		}
	}
	if index == editFieldQuestion {
		state.editQuestion.Focus()
	} else {
		state.editQuestion.Blur()
	}
}

func (state *detailState) editDraft() api.FormDraft {
	return api.FormDraft{
		Email:    state.editInputs[editFieldEmail].Value(),
		Region:   state.editInputs[editFieldRegion].Value(),
		Place:    state.editInputs[editFieldPlace].Value(),
		Topic:    api.Topics[state.editTopicIndex],
		Question: state.editQuestion.Value(),
	}
}

func (model Model) handleDetailKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail

	if state.editing {
		return model.handleEditKey(message)
	}
	if state.commentFocus {
		return model.handleCommentKey(message)
	}

	switch {
	case message.String() == "q":
		return model, tea.Quit

	case key.Matches(message, model.keys.Back):
		return model, model.navigateTo(ScreenHome)

	case key.Matches(message, model.keys.Refresh):
		return model, tea.Batch(
			model.fetchFormCmd(state.id),
			model.fetchCommentsCmd(state.id),
		)

	case key.Matches(message, model.keys.Edit):
		if state.form == nil {
			return model, nil
		}
		state.beginEdit()
		return model, nil

	case key.Matches(message, model.keys.Delete):
		if state.form == nil {
			return model, nil
		}
		return model, model.deleteFormCmd(state.id)

	case key.Matches(message, model.keys.Comment):
		if state.form == nil {
			return model, nil
		}
		state.commentFocus = true
		state.commentInput.Focus()
		return model, nil
	}
	return model, nil
}

func (model Model) handleEditKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail
	switch {
	case key.Matches(message, model.keys.Cancel):
		state.editing = false
		state.editBusy = false
		return model, nil

	case key.Matches(message, model.keys.NextField):
		state.focusEditField((state.editFocus + 1) % editFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		state.focusEditField((state.editFocus + editFieldCount - 1) % editFieldCount)
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if state.editBusy {
			return model, nil
		}
		draft := state.editDraft()
		if strings.TrimSpace(draft.Email) == "" ||
			strings.TrimSpace(draft.Region) == "" ||
			strings.TrimSpace(draft.Place) == "" ||
			strings.TrimSpace(draft.Question) == "" {
			model.alerts.Errorf("Please fill in all fields.")
			return model, nil
		}
		state.editBusy = true
		return model, model.updateFormCmd(state.id, draft)
	}

	if state.editFocus == editFieldTopic {
		switch message.String() {
		case "left", "h":
			state.editTopicIndex = (state.editTopicIndex + len(api.Topics) - 1) % len(api.Topics)
		case "right", "l", " ":
			state.editTopicIndex = (state.editTopicIndex + 1) % len(api.Topics)
		}
		return model, nil
	}

	var cmd tea.Cmd
	if state.editFocus == editFieldQuestion {
		state.editQuestion, cmd = state.editQuestion.Update(message)
	} else {
		state.editInputs[state.editFocus], cmd = state.editInputs[state.editFocus].Update(message)
	}
	return model, cmd
}

func (model Model) handleCommentKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.detail
	switch {
	case key.Matches(message, model.keys.Cancel):
		state.commentFocus = false
		state.commentInput.Blur()
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if state.commentBusy {
			return model, nil
		}
		if strings.TrimSpace(state.commentInput.Value()) == "" {
			model.alerts.Errorf("Please enter a comment.")
			return model, nil
		}
		state.commentBusy = true
		return model, model.addCommentCmd(state.id, state.commentInput.Value())
	}

	var cmd tea.Cmd
	state.commentInput, cmd = state.commentInput.Update(message)
	return model, cmd
}

func (model Model) detailView() string {
	state := model.detail
	var sb strings.Builder
	sb.WriteString(model.styles.Header.Render(fmt.Sprintf("Form #%d", state.id)))
	sb.WriteString("\n\n")

	if state.form == nil {
		sb.WriteString(model.styles.Faint.Render("Loading..."))
		return sb.String()
	}

	if state.editing {
		sb.WriteString(model.editView())
		return sb.String()
	}

	form := state.form
	sb.WriteString(model.styles.Topic.Render(form.Topic))
	sb.WriteString("\n")
	sb.WriteString(model.styles.Normal.Render(fmt.Sprintf("%s — %s, %s", form.Email, form.Place, form.Region)))
	sb.WriteString("\n")
	sb.WriteString(model.styles.Faint.Render("Submitted " + form.CreatedAt.Format("2006-01-02 15:04")))
	sb.WriteString("\n\n")
	sb.WriteString(model.styles.Normal.Render(form.Question))
	sb.WriteString("\n\n")

	sb.WriteString(model.styles.Header.Render("Comments"))
	sb.WriteString("\n")
	if len(state.comments) == 0 {
		sb.WriteString(model.styles.Faint.Render("No comments yet."))
		sb.WriteString("\n")
	}
	for _, comment := range state.comments {
		sb.WriteString(model.styles.Faint.Render(comment.CreatedAt.Format("2006-01-02 15:04")))
		sb.WriteString("\n")
		sb.WriteString(model.styles.Normal.Render("  " + comment.Text))
		sb.WriteString("\n")
	}

	if state.commentFocus {
		sb.WriteString("\n")
		sb.WriteString(state.commentInput.View())
		sb.WriteString("\n")
		if state.commentBusy {
			sb.WriteString(model.styles.Faint.Render("Posting..."))
			sb.WriteString("\n")
		}
		sb.WriteString(model.styles.Help.Render("C-d: post comment  esc: cancel"))
		return sb.String()
	}

	sb.WriteString("\n" + model.styles.Help.Render(
		"e: edit  x: delete  a: comment  r: refresh  esc: back  q: quit"))
	return sb.String()
}

func (model Model) editView() string {
	state := model.detail
	var sb strings.Builder
	sb.WriteString("Edit form\n\n")
	for i := range state.editInputs {
		sb.WriteString(state.editInputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString(model.topicPickerView(state.editTopicIndex, state.editFocus == editFieldTopic))
	sb.WriteString("\n")
	sb.WriteString(state.editQuestion.View())
	sb.WriteString("\n")
	if state.editBusy {
		sb.WriteString("\n" + model.styles.Faint.Render("Saving..."))
	}
	sb.WriteString("\n" + model.styles.Help.Render("C-d: save  tab: next field  esc: cancel"))
	return model.styles.Modal.Render(sb.String())
}
