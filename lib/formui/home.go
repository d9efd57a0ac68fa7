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
	"github.com/charmbracelet/x/ansi"

	"github.com/nutritech-agro/agroq/lib/api"
)

const (
	createFieldEmail = iota
	createFieldRegion
	createFieldPlace
	createFieldTopic
	createFieldQuestion
	createFieldCount
)

type homeState struct {
	forms  []api.Form
	cursor int
	loaded bool

	createOpen  bool
	createBusy  bool
	createFocus int
	inputs      [3]textinput.Model
	topicIndex  int
	question    textarea.Model

	logoutOpen bool
}

func newHomeState() homeState {
	var state homeState
	state.inputs[createFieldEmail] = newField("Email", 0)
	state.inputs[createFieldRegion] = newField("Region", 0)
	state.inputs[createFieldPlace] = newField("Place", 0)
	state.question = textarea.New()
	state.question.Placeholder = "Your question"
	state.question.SetHeight(4)
	state.question.ShowLineNumbers = false
	return state
}

func (state *homeState) setForms(forms []api.Form) {
	state.forms = forms
	state.loaded = true
	if state.cursor >= len(forms) {
		state.cursor = len(forms) - 1
	}
	if state.cursor < 0 {
		state.cursor = 0
	}
}

func (state *homeState) setWidth(width int) {
	for i := range state.inputs {
		state.inputs[i].Width = width
	}
	state.question.SetWidth(width)
}

func (state *homeState) openCreate() {
	state.createOpen = true
	state.focusCreateField(createFieldEmail)
}

func (state *homeState) closeCreate() {
	state.createOpen = false
	state.createBusy = false
	for i := range state.inputs {
		state.inputs[i].Blur()
	}
	state.question.Blur()
}

func (state *homeState) resetCreate() {
	for i := range state.inputs {
		state.inputs[i].Reset()
	}
	state.topicIndex = 0
	state.question.Reset()
}

func (state *homeState) focusCreateField(index int) {
	state.createFocus = index
	for i := range state.inputs {
		if i == index {
			state.inputs[i].Focus()
		} else {
			state.inputs[i].Blur()
		}
	}
	if index == createFieldQuestion {
		state.question.Focus()
	} else {
		state.question.Blur()
	}
}

func (state *homeState) createDraft() api.FormDraft {
	return api.FormDraft{
		Email:    state.inputs[createFieldEmail].Value(),
		Region:   state.inputs[createFieldRegion].Value(),
		Place:    state.inputs[createFieldPlace].Value(),
		Topic:    api.Topics[state.topicIndex],
		Question: state.question.Value(),
	}
}

func (state *homeState) draftComplete() bool {
	draft := state.createDraft()
	return strings.TrimSpace(draft.Email) != "" &&
		strings.TrimSpace(draft.Region) != "" &&
		strings.TrimSpace(draft.Place) != "" &&
		strings.TrimSpace(draft.Question) != ""
}

func (model Model) handleHomeKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.home

	if state.logoutOpen {
		switch message.String() {
		case "y", "enter":
			state.logoutOpen = false
			if err := model.manager.Logout(); err != nil {
				model.logger.Warn("failed to clear session", "error", err)
			}
			return model, model.navigateTo(ScreenLogin)
		case "n", "esc":
			state.logoutOpen = false
		}
		return model, nil
	}

	if state.createOpen {
		return model.handleCreateKey(message)
	}

	switch {
	case message.String() == "q":
		return model, tea.Quit

	case key.Matches(message, model.keys.Up):
		if state.cursor > 0 {
			state.cursor--
		}
		return model, nil

	case key.Matches(message, model.keys.Down):
		if state.cursor < len(state.forms)-1 {
			state.cursor++
		}
		return model, nil

	case key.Matches(message, model.keys.Open):
		if len(state.forms) == 0 {
			return model, nil
		}
		return model, model.openDetail(state.forms[state.cursor].ID)

	case key.Matches(message, model.keys.Refresh):
		return model, model.fetchFormsCmd()

	case key.Matches(message, model.keys.Create):
		state.openCreate()
		return model, nil

	case key.Matches(message, model.keys.Logout):
		state.logoutOpen = true
		return model, nil
	}
	return model, nil
}

func (model Model) handleCreateKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.home
	switch {
	case key.Matches(message, model.keys.Cancel):
		state.closeCreate()
		return model, nil

	case key.Matches(message, model.keys.NextField):
		state.focusCreateField((state.createFocus + 1) % createFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		state.focusCreateField((state.createFocus + createFieldCount - 1) % createFieldCount)
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if state.createBusy {
			return model, nil
		}
		if !state.draftComplete() {
			model.alerts.Errorf("Please fill in all fields.")
			return model, nil
		}
		state.createBusy = true
		return model, model.createFormCmd(state.createDraft())
	}

	if state.createFocus == createFieldTopic {
		switch message.String() {
		case "left", "h":
			state.topicIndex = (state.topicIndex + len(api.Topics) - 1) % len(api.Topics)
		case "right", "l", " ":
			state.topicIndex = (state.topicIndex + 1) % len(api.Topics)
		}
		return model, nil
	}

	var cmd tea.Cmd
	if state.createFocus == createFieldQuestion {
		state.question, cmd = state.question.Update(message)
	} else {
		state.inputs[state.createFocus], cmd = state.inputs[state.createFocus].Update(message)
	}
	return model, cmd
}

func (model Model) homeView() string {
	state := model.home
	var sb strings.Builder
	sb.WriteString(model.styles.Header.Render("Forms"))
	sb.WriteString("\n\n")

	switch {
	case state.logoutOpen:
		sb.WriteString(model.styles.Modal.Render("Log out and return to the login screen?\n\ny: log out   n: stay"))
		return sb.String()
	case state.createOpen:
		sb.WriteString(model.createModalView())
		return sb.String()
	}

	switch {
	case !state.loaded:
		sb.WriteString(model.styles.Faint.Render("Loading forms..."))
		sb.WriteString("\n")
	case len(state.forms) == 0:
		sb.WriteString(model.styles.Faint.Render("No forms yet. Press c to submit one."))
		sb.WriteString("\n")
	default:
		for i, form := range state.forms {
			row := fmt.Sprintf("#%-4d %-36s %s, %s",
				form.ID, form.Topic, form.Place, form.Region)
			if model.width > 4 {
				row = ansi.Truncate(row, model.width-4, "…")
			}
			if i == state.cursor {
				sb.WriteString(model.styles.Selected.Render("> " + row))
			} else {
				sb.WriteString(model.styles.Normal.Render("  " + row))
			}
			sb.WriteString("\n")
		}
	}

	sb.WriteString("\n" + model.styles.Help.Render(
		"enter: open  c: new form  r: refresh  L: logout  q: quit"))
	return sb.String()
}

func (model Model) createModalView() string {
	state := model.home
	var sb strings.Builder
	sb.WriteString("New form\n\n")
	for i := range state.inputs {
		sb.WriteString(state.inputs[i].View())
		sb.WriteString("\n")
	}
	sb.WriteString(model.topicPickerView(state.topicIndex, state.createFocus == createFieldTopic))
	sb.WriteString("\n")
	sb.WriteString(state.question.View())
	sb.WriteString("\n")
	if state.createBusy {
		sb.WriteString("\n" + model.styles.Faint.Render("Submitting..."))
	}
	sb.WriteString("\n" + model.styles.Help.Render("C-d: submit  tab: next field  esc: cancel"))
	return model.styles.Modal.Render(sb.String())
}

// topicPickerView renders the fixed topic choices as a one-line
// selector cycled with the arrow keys.
func (model Model) topicPickerView(index int, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	label := model.styles.Topic.Render(api.Topics[index])
	hint := ""
	if focused {
		hint = model.styles.Help.Render("  ←/→ change")
	}
	return fmt.Sprintf("%sTopic: %s%s", marker, label, hint)
}
