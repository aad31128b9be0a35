// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
)

// unlockModel asks for the master password. Nothing is checked locally; the
// password is proven by decrypting the vault. relock is set when the vault
// was already open and the password is asked again for a reload.
type unlockModel struct {
	input      textinput.Model
	submitting bool
	relock     bool
	lastErr    error
}

func newUnlockModel() unlockModel {
	input := textinput.New()
	input.Placeholder = "master password"
	input.CharLimit = 256
	input.Width = 40
	input.EchoMode = textinput.EchoPassword
	input.EchoCharacter = '*'
	input.Focus()

	return unlockModel{input: input}
}

func (m unlockModel) View() string {
	var b strings.Builder
	b.WriteString("Master password: ")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	if m.submitting {
		b.WriteString("\nDecrypting...\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n")
		b.WriteString(errorLine(m.lastErr))
		b.WriteString("\n")
	}

	hotKeys := footer(as(keys.open, "unlock"), as(keys.back, "quit"))
	if m.relock {
		hotKeys = footer(as(keys.open, "reload"), keys.back)
	}
	return renderPage("UNLOCK VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}
