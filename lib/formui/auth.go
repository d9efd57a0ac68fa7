// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutritech-agro/agroq/lib/session"
)

const (
	loginFieldEmail = iota
	loginFieldPassword
	loginFieldCount
)

type loginState struct {
	inputs [loginFieldCount]textinput.Model
	focus  int
	busy   bool
}

func newLoginState() loginState {
	var state loginState
	state.inputs[loginFieldEmail] = newField("Email", 0)
	state.inputs[loginFieldPassword] = newField("Password", 0)
	state.inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	return state
}

func (state *loginState) focusField(index int) {
	state.focus = index
	for i := range state.inputs {
		if i == index {
			state.inputs[i].Focus()
		} else {
			state.inputs[i].Blur()
		}
	}
}

func (state *loginState) reset() {
	for i := range state.inputs {
		state.inputs[i].Reset()
	}
	state.busy = false
	state.focusField(0)
}

func (state *loginState) setWidth(width int) {
	for i := range state.inputs {
		state.inputs[i].Width = width
	}
}

func (model Model) handleLoginKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.login
	switch {
	case key.Matches(message, model.keys.SwitchAuth):
		return model, model.navigateTo(ScreenSignup)

	case key.Matches(message, model.keys.NextField):
		state.focusField((state.focus + 1) % loginFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		state.focusField((state.focus + loginFieldCount - 1) % loginFieldCount)
		return model, nil

	case message.Type == tea.KeyEnter:
		if state.busy {
			return model, nil
		}
		if state.focus < loginFieldCount-1 {
			state.focusField(state.focus + 1)
			return model, nil
		}
		email := state.inputs[loginFieldEmail].Value()
		password := state.inputs[loginFieldPassword].Value()
		if email == "" {
			state.focusField(loginFieldEmail)
			return model, nil
		}
		if password == "" {
			state.focusField(loginFieldPassword)
			return model, nil
		}
		state.busy = true
		return model, model.loginCmd(email, password)
	}

	var cmd tea.Cmd
	state.inputs[state.focus], cmd = state.inputs[state.focus].Update(message)
	return model, cmd
}

func (model Model) loginView() string {
	state := model.login
	var sb strings.Builder
	sb.WriteString(model.styles.Header.Render("Log in"))
	sb.WriteString("\n\n")
	for i := range state.inputs {
		sb.WriteString(state.inputs[i].View())
		sb.WriteString("\n")
	}
	if state.busy {
		sb.WriteString("\n" + model.styles.Faint.Render("Logging in..."))
	}
	sb.WriteString("\n" + model.styles.Help.Render("enter: log in  tab: next field  ctrl+s: sign up  ctrl+c: quit"))
	return sb.String()
}

const (
	signupFieldEmail = iota
	signupFieldUsername
	signupFieldPassword
	signupFieldConfirm
	signupFieldCount
)

// signupFieldNames maps input positions to the validation error keys
// used by session.ValidateSignup and the server payload.
var signupFieldNames = [signupFieldCount]string{"email", "username", "password", "confirmPassword"}

type signupState struct {
	inputs [signupFieldCount]textinput.Model
	focus  int
	busy   bool
	fields session.FieldErrors
}

func newSignupState() signupState {
	var state signupState
	state.inputs[signupFieldEmail] = newField("Email", 0)
	state.inputs[signupFieldUsername] = newField("Username", 0)
	state.inputs[signupFieldPassword] = newField("Password", 0)
	state.inputs[signupFieldPassword].EchoMode = textinput.EchoPassword
	state.inputs[signupFieldConfirm] = newField("Confirm password", 0)
	state.inputs[signupFieldConfirm].EchoMode = textinput.EchoPassword
	return state
}

func (state *signupState) focusField(index int) {
	state.focus = index
	for i := range state.inputs {
		if i == index {
			state.inputs[i].Focus()
		} else {
			state.inputs[i].Blur()
		}
	}
}

func (state *signupState) reset() {
	for i := range state.inputs {
		state.inputs[i].Reset()
	}
	state.busy = false
	state.fields = nil
	state.focusField(0)
}

func (state *signupState) setWidth(width int) {
	for i := range state.inputs {
		state.inputs[i].Width = width
	}
}

func (model Model) handleSignupKey(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := &model.signup
	switch {
	case key.Matches(message, model.keys.SwitchAuth):
		return model, model.navigateTo(ScreenLogin)

	case key.Matches(message, model.keys.NextField):
		state.focusField((state.focus + 1) % signupFieldCount)
		return model, nil

	case key.Matches(message, model.keys.PrevField):
		state.focusField((state.focus + signupFieldCount - 1) % signupFieldCount)
		return model, nil

	case message.Type == tea.KeyEnter:
		if state.busy {
			return model, nil
		}
		if state.focus < signupFieldCount-1 {
			state.focusField(state.focus + 1)
			return model, nil
		}
		state.busy = true
		state.fields = nil
		return model, model.signupCmd(
			state.inputs[signupFieldEmail].Value(),
			state.inputs[signupFieldUsername].Value(),
			state.inputs[signupFieldPassword].Value(),
			state.inputs[signupFieldConfirm].Value(),
		)
	}

	var cmd tea.Cmd
	state.inputs[state.focus], cmd = state.inputs[state.focus].Update(message)
	return model, cmd
}

func (model Model) signupView() string {
	state := model.signup
	var sb strings.Builder
	sb.WriteString(model.styles.Header.Render("Sign up"))
	sb.WriteString("\n\n")
	for i := range state.inputs {
		sb.WriteString(state.inputs[i].View())
		sb.WriteString("\n")
		for _, text := range state.fields[signupFieldNames[i]] {
			sb.WriteString(model.styles.FieldError.Render("  " + text))
			sb.WriteString("\n")
		}
	}
	if state.busy {
		sb.WriteString("\n" + model.styles.Faint.Render("Signing up..."))
	}
	sb.WriteString("\n" + model.styles.Help.Render("enter: sign up  tab: next field  ctrl+s: log in  ctrl+c: quit"))
	return sb.String()
}

func newField(placeholder string, limit int) textinput.Model {
	input := textinput.New()
	input.Placeholder = placeholder
	input.Prompt = "> "
	if limit > 0 {
		input.CharLimit = limit
	}
	return input
}
