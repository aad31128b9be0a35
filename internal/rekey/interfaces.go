// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package rekey moves vault records between passwords and envelopes.
//
// Every path that changes an envelope decrypts it, works on the plaintext
// record, and re-encrypts with a fresh salt and IV. There is no in-place
// re-keying: a record is only ever sealed by [crypto.Cipher.Encrypt].
package rekey

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/rekey_mock.go -package=mock

// ItemSink receives re-encrypted records during import.
type ItemSink interface {
	// Store persists one envelope together with its plaintext tags.
	Store(ctx context.Context, envelope models.Envelope, tags []string) error
}

// Policy is the set of re-keying operations used by the client.
type Policy interface {
	// Edit decrypts envelope with password, applies mutate to the record and
	// re-encrypts it under the same password.
	Edit(envelope models.Envelope, password string, mutate func(*models.Record) error) (models.Envelope, error)

	// Export decrypts every item with password, attaches its stored tags and
	// seals the ordered list as a single backup envelope under password.
	// Any undecryptable item fails the whole export.
	Export(ctx context.Context, items []models.VaultItem, password string) (models.Envelope, error)

	// Import opens backup with backupPassword and stores every record,
	// re-encrypted under currentPassword, into sink. Records are independent:
	// a failed record does not stop the others.
	Import(ctx context.Context, backup models.Envelope, backupPassword, currentPassword string, sink ItemSink) (models.ImportReport, error)
}
