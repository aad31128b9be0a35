// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ClientAuthService manages the server session of the client. The session
// token is kept in a [session.TokenStore]; the master password is never part
// of it.
type ClientAuthService interface {
	Register(ctx context.Context, user models.User) error
	Login(ctx context.Context, user models.User) error
	Logout(ctx context.Context) error

	// Restore loads a stored token into the adapter. It returns
	// [session.ErrNotLoggedIn] when there is none.
	Restore(ctx context.Context) error
}

// ClientVaultService performs every vault operation of the client. Each
// method that touches plaintext takes the master password as a parameter.
type ClientVaultService interface {
	Add(ctx context.Context, record models.Record, password string) (models.VaultItem, error)

	// List decrypts the caller's items. A single undecryptable item fails the
	// whole listing with crypto.ErrDecryptionFailed.
	List(ctx context.Context, filter models.ItemFilter, password string) ([]models.DecryptedItem, error)
	Show(ctx context.Context, id string, password string) (models.DecryptedItem, error)

	// Edit re-encrypts the record of id after mutate with a fresh salt and IV
	// and replaces it on the server.
	Edit(ctx context.Context, id string, password string, mutate func(*models.Record) error) (models.DecryptedItem, error)
	Delete(ctx context.Context, id string) error
	Tags(ctx context.Context) ([]string, error)

	// Export writes the whole vault, sealed under password, into dir and
	// returns the file path.
	Export(ctx context.Context, password string, dir string) (string, error)

	// Import re-encrypts every record of the backup at path under
	// currentPassword and uploads it. The report is returned even on partial
	// failure.
	Import(ctx context.Context, path string, backupPassword, currentPassword string) (models.ImportReport, error)
}
