// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nutritech-agro/agroq/lib/alert"
	"github.com/nutritech-agro/agroq/lib/api"
	"github.com/nutritech-agro/agroq/lib/session"
)

// Screen identifies which view the model is presenting.
type Screen int

const (
	ScreenLogin Screen = iota
	ScreenSignup
	ScreenHome
	ScreenDetail
)

// Protected reports whether the screen requires an established session.
func (screen Screen) Protected() bool {
	return screen == ScreenHome || screen == ScreenDetail
}

// Config carries the collaborators the model needs. All fields are
// required except Logger, which defaults to a discarding logger.
type Config struct {
	Client  *api.Client
	Manager *session.Manager
	Guard   session.Guard
	Alerts  *alert.State
	Logger  *slog.Logger
}

// Model is the top-level bubbletea model for the interactive client.
type Model struct {
	client  *api.Client
	manager *session.Manager
	guard   session.Guard
	alerts  *alert.State
	logger  *slog.Logger

	keys   KeyMap
	theme  Theme
	styles styles

	screen Screen
	width  int
	height int

	// generation is bumped on every navigation; async results stamped
	// with an older generation are dropped.
	generation int

	login  loginState
	signup signupState
	home   homeState
	detail detailState
}

// NewModel builds the model. The initial screen goes through the same
// guard decision as every later navigation: with a session on disk the
// client opens on the listing, otherwise on the login screen.
func NewModel(config Config) Model {
	logger := config.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	model := Model{
		client:  config.Client,
		manager: config.Manager,
		guard:   config.Guard,
		alerts:  config.Alerts,
		logger:  logger,
		keys:    DefaultKeyMap,
		theme:   DefaultTheme,
		styles:  newStyles(DefaultTheme),
		login:   newLoginState(),
		signup:  newSignupState(),
		home:    newHomeState(),
		detail:  newDetailState(),
	}
	if model.guard.Allow() {
		model.screen = ScreenHome
	} else {
		model.screen = ScreenLogin
		model.login.focusField(0)
	}
	return model
}

// Init implements tea.Model.
func (model Model) Init() tea.Cmd {
	if model.screen == ScreenHome {
		return model.fetchFormsCmd()
	}
	return nil
}

// Update implements tea.Model. Keyboard events are routed to the
// current screen; async results are applied only when their generation
// still matches.
func (model Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		model.width = message.Width
		model.height = message.Height
		model.resizeInputs()
		return model, nil

	case tea.KeyMsg:
		if key.Matches(message, model.keys.Quit) {
			return model, tea.Quit
		}
		switch model.screen {
		case ScreenLogin:
			return model.handleLoginKey(message)
		case ScreenSignup:
			return model.handleSignupKey(message)
		case ScreenHome:
			return model.handleHomeKey(message)
		case ScreenDetail:
			return model.handleDetailKey(message)
		}
		return model, nil

	case loginResultMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.login.busy = false
		if message.err != nil {
			// The session manager has already raised the alert.
			model.logger.Warn("login failed", "error", message.err)
			return model, nil
		}
		model.login.reset()
		return model, model.navigateTo(ScreenHome)

	case signupResultMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.signup.busy = false
		if message.err != nil {
			model.logger.Warn("signup failed", "error", message.err)
			return model, nil
		}
		if len(message.fields) > 0 {
			model.signup.fields = message.fields
			return model, nil
		}
		model.signup.reset()
		return model, model.navigateTo(ScreenLogin)

	case formsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			// Listing failures keep whatever was on screen.
			model.logger.Warn("failed to fetch forms", "error", message.err)
			return model, nil
		}
		model.home.setForms(message.forms)
		return model, nil

	case formCreatedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.home.createBusy = false
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to submit form.")
			model.logger.Warn("failed to create form", "error", message.err)
			return model, nil
		}
		model.alerts.Successf("Form submitted successfully!")
		model.home.closeCreate()
		model.home.resetCreate()
		return model, model.fetchFormsCmd()

	case formLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to fetch form.")
			model.logger.Warn("failed to fetch form", "id", model.detail.id, "error", message.err)
			if api.IsNotFound(message.err) {
				return model, model.navigateTo(ScreenHome)
			}
			return model, nil
		}
		form := message.form
		model.detail.form = &form
		return model, nil

	case commentsLoadedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to fetch comments.")
			model.logger.Warn("failed to fetch comments", "id", model.detail.id, "error", message.err)
			return model, nil
		}
		model.detail.comments = message.comments
		return model, nil

	case formUpdatedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.detail.editBusy = false
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to update form.")
			model.logger.Warn("failed to update form", "id", model.detail.id, "error", message.err)
			return model, nil
		}
		form := message.form
		model.detail.form = &form
		model.detail.editing = false
		model.alerts.Successf("Form updated successfully!")
		return model, nil

	case formDeletedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to delete form.")
			model.logger.Warn("failed to delete form", "id", model.detail.id, "error", message.err)
			return model, nil
		}
		model.alerts.Successf("Form deleted successfully!")
		return model, model.navigateTo(ScreenHome)

	case commentAddedMsg:
		if message.generation != model.generation {
			return model, nil
		}
		model.detail.commentBusy = false
		if message.err != nil {
			if cmd, redirected := model.redirectOnAuth(message.err); redirected {
				return model, cmd
			}
			model.alerts.Errorf("Failed to add comment.")
			model.logger.Warn("failed to add comment", "id", model.detail.id, "error", message.err)
			return model, nil
		}
		model.detail.comments = append(model.detail.comments, message.comment)
		model.detail.commentInput.Reset()
		model.detail.commentFocus = false
		model.detail.commentInput.Blur()
		model.alerts.Successf("Comment added successfully!")
		return model, nil
	}

	return model, nil
}

// navigateTo switches screens, replacing the target with the login
// screen when a protected target is requested without a session. The
// generation bump makes any in-flight request for the previous screen
// inert.
func (model *Model) navigateTo(screen Screen) tea.Cmd {
	if screen.Protected() && !model.guard.Allow() {
		screen = ScreenLogin
	}
	model.generation++
	model.screen = screen
	switch screen {
	case ScreenLogin:
		model.login.focusField(0)
		return nil
	case ScreenSignup:
		model.signup.focusField(0)
		return nil
	case ScreenHome:
		model.home.closeCreate()
		model.home.logoutOpen = false
		return model.fetchFormsCmd()
	case ScreenDetail:
		model.detail.beginLoading()
		return tea.Batch(
			model.fetchFormCmd(model.detail.id),
			model.fetchCommentsCmd(model.detail.id),
		)
	}
	return nil
}

// openDetail navigates to the detail screen for the given form.
func (model *Model) openDetail(id int64) tea.Cmd {
	model.detail.id = id
	return model.navigateTo(ScreenDetail)
}

// redirectOnAuth forces the user back to the login screen when a
// request failed for auth reasons, whether the credential was missing
// locally or rejected by the server.
func (model *Model) redirectOnAuth(err error) (tea.Cmd, bool) {
	if !api.IsAuth(err) {
		return nil, false
	}
	model.alerts.Errorf("User is not authenticated.")
	model.logger.Warn("session rejected, returning to login", "error", err)
	return model.navigateTo(ScreenLogin), true
}

func (model *Model) resizeInputs() {
	width := model.width - 8
	if width < 20 {
		width = 20
	}
	if width > 72 {
		width = 72
	}
	model.login.setWidth(width)
	model.signup.setWidth(width)
	model.home.setWidth(width)
	model.detail.setWidth(width)
}
