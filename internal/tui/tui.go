// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	vault     service.ClientVaultService
	clipboard utils.Clipboard

	logger *logger.Logger
}

func New(vault service.ClientVaultService, clipboard utils.Clipboard, logger *logger.Logger) *TUI {
	return &TUI{
		vault:     vault,
		clipboard: clipboard,
		logger:    logger,
	}
}

// Run shows the unlock screen and then the item list, restricted to
// filter.Tag on the server and pre-filled with filter.Search locally. It
// blocks until the user quits.
func (t *TUI) Run(ctx context.Context, filter models.ItemFilter) error {
	root := newRootModel(ctx, t.vault, t.clipboard, filter)

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(rootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	t.logger.Debug().Str("func", "*TUI.Run").Int("items", len(result.list.items)).Msg("vault view closed")
	return nil
}
