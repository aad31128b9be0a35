// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type screen int

const (
	screenUnlock screen = iota
	screenList
	screenDetail
	screenConfirmDelete
)

// statusTTL is how long a status line such as "copied" stays visible.
const statusTTL = 3 * time.Second

type rootModel struct {
	ctx       context.Context
	vault     service.ClientVaultService
	clipboard utils.Clipboard
	filter    models.ItemFilter

	screen screen

	unlock unlockModel
	list   listModel
	detail detailModel

	quitByUser bool
}

func newRootModel(ctx context.Context, vault service.ClientVaultService, clipboard utils.Clipboard, filter models.ItemFilter) rootModel {
	list := newListModel()
	list.search.SetValue(filter.Search)

	return rootModel{
		ctx:       ctx,
		vault:     vault,
		clipboard: clipboard,
		filter:    models.ItemFilter{Tag: filter.Tag},
		screen:    screenUnlock,
		unlock:    newUnlockModel(),
		list:      list,
	}
}

func (m rootModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m rootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case itemsLoadedMsg:
		return m.onItemsLoaded(msg)

	case copiedMsg:
		status := msg.what + " copied to clipboard"
		if msg.err != nil {
			status = errorLine(msg.err)
		}
		m.list.status, m.detail.status = status, status
		return m, clearStatusAfter(statusTTL)

	case itemDeletedMsg:
		m.screen = screenList
		if msg.err != nil {
			m.list.lastErr = msg.err
			return m, nil
		}
		m.list.remove(msg.id)
		m.list.status = "item deleted"
		return m, clearStatusAfter(statusTTL)

	case clearStatusMsg:
		m.list.status, m.detail.status = "", ""
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitByUser = m.screen == screenUnlock && !m.unlock.relock
			return m, tea.Quit
		}

		switch m.screen {
		case screenUnlock:
			return m.updateUnlock(msg)
		case screenList:
			return m.updateList(msg)
		case screenDetail:
			return m.updateDetail(msg)
		case screenConfirmDelete:
			return m.updateConfirmDelete(msg)
		}
	}

	return m.forward(msg)
}

func (m rootModel) onItemsLoaded(msg itemsLoadedMsg) (tea.Model, tea.Cmd) {
	m.unlock.submitting = false
	if msg.err != nil {
		m.unlock.lastErr = msg.err
		return m, nil
	}

	m.unlock.lastErr = nil
	m.unlock.relock = false
	m.list.lastErr = nil
	m.list.setItems(msg.items)
	m.screen = screenList
	return m, nil
}

func (m rootModel) updateUnlock(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		if m.unlock.relock {
			m.unlock.relock = false
			m.unlock.lastErr = nil
			m.unlock.input.SetValue("")
			m.screen = screenList
			return m, nil
		}
		m.quitByUser = true
		return m, tea.Quit
	case key.Matches(msg, keys.open):
		password := m.unlock.input.Value()
		if m.unlock.submitting || password == "" {
			return m, nil
		}
		m.unlock.input.SetValue("")
		m.unlock.submitting = true
		m.unlock.lastErr = nil
		return m, m.cmdLoad(password)
	}

	var cmd tea.Cmd
	m.unlock.input, cmd = m.unlock.input.Update(msg)
	return m, cmd
}

func (m rootModel) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.searching {
		switch {
		case key.Matches(msg, keys.open):
			m.list.searching = false
			m.list.search.Blur()
			return m, nil
		case key.Matches(msg, keys.back):
			m.list.searching = false
			m.list.search.Blur()
			m.list.search.SetValue("")
			m.list.applyFilter()
			return m, nil
		}

		var cmd tea.Cmd
		m.list.search, cmd = m.list.search.Update(msg)
		m.list.applyFilter()
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		m.list.moveUp()
	case key.Matches(msg, keys.down):
		m.list.moveDown()
	case key.Matches(msg, keys.search):
		m.list.searching = true
		return m, m.list.search.Focus()
	case key.Matches(msg, keys.reload):
		// The master password is not kept after unlock, so a reload asks
		// for it again.
		m.unlock.relock = true
		m.unlock.lastErr = nil
		m.screen = screenUnlock
		return m, m.unlock.input.Focus()
	case key.Matches(msg, keys.open):
		if item, ok := m.list.current(); ok {
			m.detail = detailModel{item: item}
			m.screen = screenDetail
		}
	case key.Matches(msg, keys.copy):
		if item, ok := m.list.current(); ok {
			return m, m.cmdCopy("password", item.Record.Secret)
		}
	case key.Matches(msg, keys.copyUser):
		if item, ok := m.list.current(); ok {
			return m, m.cmdCopy("username", item.Record.Username)
		}
	case key.Matches(msg, keys.delete):
		if _, ok := m.list.current(); ok {
			m.screen = screenConfirmDelete
		}
	}
	return m, nil
}

func (m rootModel) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.back):
		m.detail = detailModel{}
		m.screen = screenList
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.reveal):
		m.detail.reveal = !m.detail.reveal
	case key.Matches(msg, keys.copy):
		return m, m.cmdCopy("password", m.detail.item.Record.Secret)
	case key.Matches(msg, keys.copyUser):
		return m, m.cmdCopy("username", m.detail.item.Record.Username)
	}
	return m, nil
}

func (m rootModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		item, ok := m.list.current()
		if !ok {
			m.screen = screenList
			return m, nil
		}
		return m, m.cmdDelete(item.ID)
	case key.Matches(msg, keys.no):
		m.screen = screenList
	}
	return m, nil
}

// forward passes non-key messages such as cursor blinks to the focused input.
func (m rootModel) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch {
	case m.screen == screenUnlock:
		m.unlock.input, cmd = m.unlock.input.Update(msg)
	case m.screen == screenList && m.list.searching:
		m.list.search, cmd = m.list.search.Update(msg)
	}
	return m, cmd
}

func (m rootModel) View() string {
	switch m.screen {
	case screenList:
		return m.list.View()
	case screenDetail:
		return m.detail.View()
	case screenConfirmDelete:
		item, _ := m.list.current()
		return m.list.View() + "\n" + confirmStyle.Render("Delete \""+item.Record.Title+"\"? y/n")
	default:
		return m.unlock.View()
	}
}

func (m rootModel) cmdLoad(password string) tea.Cmd {
	ctx, vault, filter := m.ctx, m.vault, m.filter
	return func() tea.Msg {
		items, err := vault.List(ctx, filter, password)
		return itemsLoadedMsg{items: items, err: err}
	}
}

func (m rootModel) cmdCopy(what, value string) tea.Cmd {
	clipboard := m.clipboard
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.Copy(value)}
	}
}

func (m rootModel) cmdDelete(id string) tea.Cmd {
	ctx, vault := m.ctx, m.vault
	return func() tea.Msg {
		return itemDeletedMsg{id: id, err: vault.Delete(ctx, id)}
	}
}

func clearStatusAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return clearStatusMsg{} })
}
