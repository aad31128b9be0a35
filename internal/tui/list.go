// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
	"github.com/charmbracelet/bubbles/textinput"
)

const listTitleWidth = 32

// listModel shows decrypted items. visible holds indexes into items that
// match the search term.
type listModel struct {
	items   []models.DecryptedItem
	visible []int
	idx     int

	searching bool
	search    textinput.Model

	status  string
	lastErr error
}

func newListModel() listModel {
	search := textinput.New()
	search.Placeholder = "title or username"
	search.Prompt = "/"
	search.Width = 40

	return listModel{search: search}
}

func (m *listModel) setItems(items []models.DecryptedItem) {
	m.items = items
	m.applyFilter()
}

func (m *listModel) applyFilter() {
	term := strings.TrimSpace(m.search.Value())

	m.visible = m.visible[:0]
	for i, item := range m.items {
		if item.Record.Matches(term) {
			m.visible = append(m.visible, i)
		}
	}
	if m.idx >= len(m.visible) {
		m.idx = max(len(m.visible)-1, 0)
	}
}

func (m *listModel) remove(id string) {
	for i, item := range m.items {
		if item.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			break
		}
	}
	m.applyFilter()
}

func (m listModel) current() (models.DecryptedItem, bool) {
	if m.idx < 0 || m.idx >= len(m.visible) {
		return models.DecryptedItem{}, false
	}
	return m.items[m.visible[m.idx]], true
}

func (m *listModel) moveUp() {
	if m.idx > 0 {
		m.idx--
	}
}

func (m *listModel) moveDown() {
	if m.idx < len(m.visible)-1 {
		m.idx++
	}
}

func (m listModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	if len(m.visible) == 0 {
		b.WriteString("No items\n")
	}
	for i, idx := range m.visible {
		item := m.items[idx]
		line := fmt.Sprintf("%-*s %s", listTitleWidth, fitText(item.Record.Title, listTitleWidth), item.Record.Username)
		if len(item.Record.Tags) > 0 {
			line += "  " + tagStyle.Render("#"+strings.Join(item.Record.Tags, " #"))
		}

		if i == m.idx {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	if m.lastErr != nil {
		b.WriteString("\n" + errorLine(m.lastErr) + "\n")
	}

	title := fmt.Sprintf("VAULT (%d/%d)", len(m.visible), len(m.items))
	hotKeys := footer(keys.open, keys.search, keys.copy, keys.copyUser, keys.delete, keys.reload, keys.quit)
	if m.searching {
		hotKeys = footer(as(keys.open, "apply"), as(keys.back, "clear search"))
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}
