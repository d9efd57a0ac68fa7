// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "strings"

// View implements tea.Model. Every screen shares the same chrome: a
// title bar, the current alert (if any), and the screen body.
func (model Model) View() string {
	var sb strings.Builder
	sb.WriteString(model.styles.Header.Render("agroq"))
	sb.WriteString(model.styles.Faint.Render("  Nutritech Agro"))
	sb.WriteString("\n")

	if message := model.alerts.Current(); message != nil {
		sb.WriteString(renderAlert(model.styles, message.Text, message.Severity))
	}
	sb.WriteString("\n\n")

	switch model.screen {
	case ScreenLogin:
		sb.WriteString(model.loginView())
	case ScreenSignup:
		sb.WriteString(model.signupView())
	case ScreenHome:
		sb.WriteString(model.homeView())
	case ScreenDetail:
		sb.WriteString(model.detailView())
	}
	sb.WriteString("\n")
	return sb.String()
}
