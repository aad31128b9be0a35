// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/secure-vault/models"

// itemsLoadedMsg carries the outcome of decrypting the vault. The password
// used for it stays in the command closure and is not sent back.
type itemsLoadedMsg struct {
	items []models.DecryptedItem
	err   error
}

type copiedMsg struct {
	what string
	err  error
}

type itemDeletedMsg struct {
	id  string
	err error
}

type clearStatusMsg struct{}
