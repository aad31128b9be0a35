// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type fakeClipboard struct {
	copied []string
	err    error
}

func (f *fakeClipboard) Copy(text string) error {
	f.copied = append(f.copied, text)
	return f.err
}

var testItems = []models.DecryptedItem{
	{ID: "1", Record: models.Record{Title: "Bank", Username: "alice", Secret: "bank-secret", Tags: []string{"finance"}}},
	{ID: "2", Record: models.Record{Title: "Mail", Username: "alice@example.com", Secret: "mail-secret"}},
	{ID: "3", Record: models.Record{Title: "Work VPN", Username: "a.smith", Secret: "vpn-secret", Tags: []string{"work"}}},
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(t *testing.T, m rootModel, s string) rootModel {
	t.Helper()
	for _, r := range s {
		m = update(t, m, keyRunes(string(r)))
	}
	return m
}

// update applies msg and returns the next model without running commands.
func update(t *testing.T, m rootModel, msg tea.Msg) rootModel {
	t.Helper()
	next, _ := m.Update(msg)
	root, ok := next.(rootModel)
	require.True(t, ok)
	return root
}

// run applies msg and feeds the message produced by its command back in.
func run(t *testing.T, m rootModel, msg tea.Msg) rootModel {
	t.Helper()
	next, cmd := m.Update(msg)
	root := next.(rootModel)
	require.NotNil(t, cmd)
	return update(t, root, cmd())
}

func unlocked(t *testing.T, vault *mock.MockClientVaultService, clipboard *fakeClipboard) rootModel {
	t.Helper()
	vault.EXPECT().List(gomock.Any(), models.ItemFilter{}, "master").Return(append([]models.DecryptedItem(nil), testItems...), nil)

	m := newRootModel(context.Background(), vault, clipboard, models.ItemFilter{})
	m = typeText(t, m, "master")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenList, m.screen)
	return m
}

func TestRootModel_Unlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)

	m := unlocked(t, vault, &fakeClipboard{})
	assert.Len(t, m.list.visible, 3)
	assert.Empty(t, m.unlock.input.Value())
	assert.Contains(t, m.View(), "VAULT (3/3)")
}

func TestRootModel_Unlock_WrongPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	vault.EXPECT().List(gomock.Any(), gomock.Any(), "wrong").Return(nil, crypto.ErrDecryptionFailed)

	m := newRootModel(context.Background(), vault, &fakeClipboard{}, models.ItemFilter{})
	m = typeText(t, m, "wrong")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenUnlock, m.screen)
	assert.ErrorIs(t, m.unlock.lastErr, crypto.ErrDecryptionFailed)
	assert.False(t, m.unlock.submitting)
	assert.Empty(t, m.unlock.input.Value())
}

func TestRootModel_Unlock_EmptyPasswordIgnored(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)

	m := newRootModel(context.Background(), vault, &fakeClipboard{}, models.ItemFilter{})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestRootModel_Unlock_Esc(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)

	m := newRootModel(context.Background(), vault, &fakeClipboard{}, models.ItemFilter{})
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, next.(rootModel).quitByUser)
}

func TestRootModel_TagFilterPassedToService(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	vault.EXPECT().List(gomock.Any(), models.ItemFilter{Tag: "work"}, "pw").Return(testItems[2:], nil)

	m := newRootModel(context.Background(), vault, &fakeClipboard{}, models.ItemFilter{Tag: "work", Search: "vpn"})
	m = typeText(t, m, "pw")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, "vpn", m.list.search.Value())
	require.Len(t, m.list.visible, 1)
}

func TestRootModel_NavigationAndSearch(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	item, ok := m.list.current()
	require.True(t, ok)
	assert.Equal(t, "3", item.ID)

	m = update(t, m, keyRunes("k"))
	item, _ = m.list.current()
	assert.Equal(t, "2", item.ID)

	m = update(t, m, keyRunes("/"))
	require.True(t, m.list.searching)
	m = typeText(t, m, "bank")
	assert.Len(t, m.list.visible, 1)
	item, _ = m.list.current()
	assert.Equal(t, "1", item.ID)

	// "q" while searching is text, not quit
	m = typeText(t, m, "q")
	assert.Empty(t, m.list.visible)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.list.searching)
	assert.Len(t, m.list.visible, 3)
}

func TestRootModel_DetailReveal(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Equal(t, screenDetail, m.screen)
	assert.NotContains(t, m.View(), "bank-secret")
	assert.Contains(t, m.View(), maskedSecret)

	m = update(t, m, keyRunes("r"))
	assert.Contains(t, m.View(), "bank-secret")

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, screenList, m.screen)
	assert.False(t, m.detail.reveal)
}

func TestRootModel_Copy(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	clipboard := &fakeClipboard{}
	m := unlocked(t, vault, clipboard)

	m = run(t, m, keyRunes("c"))
	assert.Equal(t, "password copied to clipboard", m.list.status)

	m = run(t, m, keyRunes("u"))
	assert.Equal(t, []string{"bank-secret", "alice"}, clipboard.copied)

	m = update(t, m, clearStatusMsg{})
	assert.Empty(t, m.list.status)

	clipboard.err = errors.New("no xclip")
	m = run(t, m, keyRunes("c"))
	assert.Contains(t, m.list.status, "Error:")
}

func TestRootModel_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	m = update(t, m, keyRunes("d"))
	require.Equal(t, screenConfirmDelete, m.screen)
	assert.Contains(t, m.View(), `Delete "Bank"?`)

	m = update(t, m, keyRunes("n"))
	assert.Equal(t, screenList, m.screen)
	assert.Len(t, m.list.items, 3)

	vault.EXPECT().Delete(gomock.Any(), "1").Return(nil)
	m = update(t, m, keyRunes("d"))
	m = run(t, m, keyRunes("y"))

	assert.Equal(t, screenList, m.screen)
	assert.Equal(t, "item deleted", m.list.status)
	require.Len(t, m.list.items, 2)
	assert.Equal(t, "2", m.list.items[0].ID)
}

func TestRootModel_Delete_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	vault.EXPECT().Delete(gomock.Any(), "1").Return(errors.New("server unavailable"))
	m = update(t, m, keyRunes("d"))
	m = run(t, m, keyRunes("y"))

	assert.Equal(t, screenList, m.screen)
	assert.Error(t, m.list.lastErr)
	assert.Len(t, m.list.items, 3)
}

func TestRootModel_PasswordNotKeptAfterUnlock(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)

	m := newRootModel(context.Background(), vault, &fakeClipboard{}, models.ItemFilter{})
	m = typeText(t, m, "master")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(rootModel)
	require.NotNil(t, cmd)
	assert.Empty(t, m.unlock.input.Value(), "input must be cleared as soon as the password is submitted")

	vault.EXPECT().List(gomock.Any(), models.ItemFilter{}, "master").Return(testItems, nil)
	m = update(t, m, cmd())
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	assert.Equal(t, screenList, m.screen)
	assert.Empty(t, m.unlock.input.Value())
	assert.NotContains(t, m.View(), "master")
}

func TestRootModel_Reload(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	// No List call is expected until the password is entered again.
	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Equal(t, screenUnlock, m.screen)
	assert.True(t, m.unlock.relock)
	assert.Contains(t, m.View(), "enter: reload")

	vault.EXPECT().List(gomock.Any(), models.ItemFilter{}, "master").Return(testItems[:1], nil)
	m = typeText(t, m, "master")
	m = run(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	assert.Equal(t, screenList, m.screen)
	assert.False(t, m.unlock.relock)
	assert.Len(t, m.list.items, 1)
}

func TestRootModel_Reload_Cancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	m = update(t, m, tea.KeyMsg{Type: tea.KeyCtrlR})
	m = typeText(t, m, "mas")
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(rootModel)

	assert.Nil(t, cmd)
	assert.False(t, m.quitByUser)
	assert.Equal(t, screenList, m.screen)
	assert.Empty(t, m.unlock.input.Value())
	assert.Len(t, m.list.items, 3)
}

func TestRootModel_QuitFromList(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockClientVaultService(ctrl)
	m := unlocked(t, vault, &fakeClipboard{})

	next, cmd := m.Update(keyRunes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.False(t, next.(rootModel).quitByUser)
}

func TestFitText(t *testing.T) {
	assert.Equal(t, "short", fitText("short", 10))
	assert.Equal(t, "abcdefg...", fitText("abcdefghijklmnop", 10))
	assert.Equal(t, "пр", fitText("привет", 2))
}

func TestFooter(t *testing.T) {
	assert.Equal(t, "r: reveal │ esc: back", footer(keys.reveal, keys.back))
	assert.Equal(t, "enter: unlock", footer(as(keys.open, "unlock")))
	assert.Equal(t, "open", keys.open.Help().Desc)
}
