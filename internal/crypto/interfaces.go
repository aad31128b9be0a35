// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package crypto implements the client-side envelope that protects every
// vault record. It is the only place in the repository that derives keys or
// parses envelopes: every other package goes through [Cipher].
//
// Scheme:
//
//	salt, iv  = 16 random bytes each                    (fresh per call)
//	key       = PBKDF2-HMAC-SHA256(password, salt, 10000, 32)
//	ct        = AES-256-CBC(key, iv, PKCS#7(JSON(record)))
//	envelope  = hex(salt) ‖ hex(iv) ‖ base64(ct)
package crypto

import "github.com/MKhiriev/secure-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/cipher_mock.go -package=mock

// Cipher seals plaintext payloads into envelopes and opens them again. The
// master password is passed on every call and is never retained.
type Cipher interface {
	// Encrypt validates record and seals it under password with a fresh salt
	// and IV. Returns [ErrEmptyMasterPassword] for an empty password and
	// [validators.ErrInvalidRecord] (wrapped) for a record missing required
	// fields.
	Encrypt(record models.Record, password string) (models.Envelope, error)

	// Decrypt opens envelope with password and returns the record.
	// Returns [ErrMalformedEnvelope] when envelope is structurally broken and
	// [ErrDecryptionFailed] for every other failure, including a wrong
	// password.
	Decrypt(envelope models.Envelope, password string) (models.Record, error)

	// Seal serializes payload to JSON and seals it. Used for backups, whose
	// payload is a list of records.
	Seal(payload any, password string) (models.Envelope, error)

	// Open is the inverse of Seal. target must be a non-nil pointer.
	Open(envelope models.Envelope, password string, target any) error
}
