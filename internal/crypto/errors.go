// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import "errors"

var (
	// ErrEmptyMasterPassword is returned before any cryptographic work is done
	// when the caller passes an empty master password.
	ErrEmptyMasterPassword = errors.New("master password must not be empty")

	// ErrMalformedEnvelope is returned when an envelope is shorter than the
	// salt+IV header or the header is not hex.
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// ErrDecryptionFailed covers a wrong password, tampered ciphertext and
	// corrupted padding alike. It never wraps the underlying cause.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrRandomSource is returned when salt or IV cannot be read from the
	// random source.
	ErrRandomSource = errors.New("random source failure")
)
