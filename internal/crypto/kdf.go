// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/sha256"
	"fmt"

	"github.com/awnumar/memguard"
	"golang.org/x/crypto/pbkdf2"
)

const (
	// KDFIterations is the PBKDF2 work factor. Envelopes do not record it, so
	// changing it makes every existing envelope undecryptable.
	KDFIterations = 10000

	// KeySize is the derived key length (AES-256).
	KeySize = 32

	// SaltSize is the length of the random KDF salt.
	SaltSize = 16
)

// DeriveKey turns password and salt into a 256-bit key with
// PBKDF2-HMAC-SHA256. The same inputs always yield the same key.
//
// An empty password is accepted here; callers reject it first. A salt of the
// wrong length is a programming error and panics.
func DeriveKey(password string, salt []byte) []byte {
	if len(salt) != SaltSize {
		panic(fmt.Sprintf("crypto: salt must be %d bytes, got %d", SaltSize, len(salt)))
	}

	return pbkdf2.Key([]byte(password), salt, KDFIterations, KeySize, sha256.New)
}

// wipe zeroes key material in place.
func wipe(b []byte) {
	memguard.WipeBytes(b)
}
