// Copyright 2026 The Agroq Authors
// SPDX-License-Identifier: Apache-2.0

package formui

import "github.com/nutritech-agro/agroq/lib/alert"

func renderAlert(st styles, text string, severity alert.Severity) string {
	if severity == alert.Error {
		return st.AlertError.Render(text)
	}
	return st.AlertSuccess.Render(text)
}
