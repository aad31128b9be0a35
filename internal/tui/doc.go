// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui implements the interactive terminal view of the vault: an
// unlock prompt for the master password followed by a searchable list of
// decrypted items with a detail pane. Decryption happens through the client
// vault service; the master password lives only in the running model.
package tui
