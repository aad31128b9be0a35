// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
)

// vaultKeys are the bindings shared by the unlock, list and detail screens.
// The help text doubles as the footer of each page.
type vaultKeys struct {
	up, down key.Binding
	open     key.Binding
	back     key.Binding
	quit     key.Binding
	search   key.Binding
	reveal   key.Binding
	reload   key.Binding
	delete   key.Binding
	copy     key.Binding
	copyUser key.Binding
	yes, no  key.Binding
}

var keys = vaultKeys{
	up:       key.NewBinding(key.WithKeys("up", "k")),
	down:     key.NewBinding(key.WithKeys("down", "j")),
	open:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	back:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back")),
	quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	search:   key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
	reveal:   key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reveal")),
	reload:   key.NewBinding(key.WithKeys("ctrl+r"), key.WithHelp("ctrl+r", "reload")),
	delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
	copy:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy password")),
	copyUser: key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "copy username")),
	yes:      key.NewBinding(key.WithKeys("y")),
	no:       key.NewBinding(key.WithKeys("n", "esc")),
}

// as returns a copy of b with a screen-specific help description.
func as(b key.Binding, desc string) key.Binding {
	b.SetHelp(b.Help().Key, desc)
	return b
}

func footer(bindings ...key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+": "+h.Desc)
	}
	return strings.Join(parts, " │ ")
}
