// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

const (
	// IVSize is the length of the CBC initialization vector.
	IVSize = aes.BlockSize

	saltHexLen = 2 * SaltSize
	ivHexLen   = 2 * IVSize

	// HeaderLen is the number of characters taken by the hex salt and IV at
	// the start of every envelope.
	HeaderLen = saltHexLen + ivHexLen
)

// envelopeCipher is the AES-256-CBC implementation of [Cipher].
type envelopeCipher struct {
	// random supplies salts and IVs. It must be a CSPRNG that is safe for
	// concurrent use; crypto/rand.Reader is the default.
	random io.Reader
}

// Option configures an envelope cipher.
type Option func(*envelopeCipher)

// WithRandom replaces the random source. Intended for tests.
func WithRandom(r io.Reader) Option {
	return func(c *envelopeCipher) {
		c.random = r
	}
}

// NewEnvelopeCipher constructs the default [Cipher].
func NewEnvelopeCipher(opts ...Option) Cipher {
	c := &envelopeCipher{random: rand.Reader}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Encrypt implements [Cipher].
func (c *envelopeCipher) Encrypt(record models.Record, password string) (models.Envelope, error) {
	if password == "" {
		return "", ErrEmptyMasterPassword
	}
	if err := validators.ValidateRecord(record); err != nil {
		return "", err
	}

	return c.Seal(record, password)
}

// Decrypt implements [Cipher]. A payload that decodes as JSON but does not
// form a valid record is reported as [ErrDecryptionFailed] like any other
// decryption problem.
func (c *envelopeCipher) Decrypt(envelope models.Envelope, password string) (models.Record, error) {
	var record models.Record
	if err := c.Open(envelope, password, &record); err != nil {
		return models.Record{}, err
	}

	if err := validators.ValidateRecord(record); err != nil {
		return models.Record{}, ErrDecryptionFailed
	}

	return record, nil
}

// Seal implements [Cipher].
func (c *envelopeCipher) Seal(payload any, password string) (models.Envelope, error) {
	if password == "" {
		return "", ErrEmptyMasterPassword
	}

	// 1. Serialize
	plaintext, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("marshal payload: %w", err)
	}
	defer wipe(plaintext)

	// 2. Fresh salt and IV, drawn separately
	salt, err := c.readRandom(SaltSize)
	if err != nil {
		return "", err
	}
	iv, err := c.readRandom(IVSize)
	if err != nil {
		return "", err
	}

	// 3. Derive the per-envelope key
	key := DeriveKey(password, salt)
	defer wipe(key)

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("create cipher: %w", err)
	}

	// 4. Pad and encrypt
	padded := pkcs7Pad(plaintext, aes.BlockSize)
	defer wipe(padded)

	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	// 5. hex(salt) ‖ hex(iv) ‖ base64(ct)
	var sb strings.Builder
	sb.Grow(HeaderLen + base64.StdEncoding.EncodedLen(len(ciphertext)))
	sb.WriteString(hex.EncodeToString(salt))
	sb.WriteString(hex.EncodeToString(iv))
	sb.WriteString(base64.StdEncoding.EncodeToString(ciphertext))

	return models.Envelope(sb.String()), nil
}

// Open implements [Cipher].
func (c *envelopeCipher) Open(envelope models.Envelope, password string, target any) error {
	if password == "" {
		return ErrEmptyMasterPassword
	}

	salt, iv, encoded, err := splitEnvelope(envelope)
	if err != nil {
		return err
	}

	key := DeriveKey(password, salt)
	defer wipe(key)

	plaintext, ok := decryptCBC(key, iv, encoded)
	if !ok {
		return ErrDecryptionFailed
	}
	defer wipe(plaintext)

	if !utf8.Valid(plaintext) {
		return ErrDecryptionFailed
	}
	if err = json.Unmarshal(plaintext, target); err != nil {
		return ErrDecryptionFailed
	}

	return nil
}

func (c *envelopeCipher) readRandom(n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(c.random, buf); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrRandomSource, err)
	}
	return buf, nil
}

// splitEnvelope cuts envelope at the fixed offsets 32 and 64.
func splitEnvelope(envelope models.Envelope) (salt, iv []byte, encoded string, err error) {
	s := string(envelope)
	if len(s) < HeaderLen {
		return nil, nil, "", ErrMalformedEnvelope
	}

	salt, err = hex.DecodeString(s[:saltHexLen])
	if err != nil {
		return nil, nil, "", ErrMalformedEnvelope
	}
	iv, err = hex.DecodeString(s[saltHexLen:HeaderLen])
	if err != nil {
		return nil, nil, "", ErrMalformedEnvelope
	}

	return salt, iv, s[HeaderLen:], nil
}

// decryptCBC reports only success or failure; which step failed is not
// observable by the caller.
func decryptCBC(key, iv []byte, encoded string) ([]byte, bool) {
	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return nil, false
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, false
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, ok := pkcs7Unpad(padded, aes.BlockSize)
	if !ok {
		wipe(padded)
		return nil, false
	}
	return plaintext, true
}

// CheckEnvelopeShape verifies the structure of an envelope without any key:
// the hex header must be present and the remainder must be non-empty,
// block-aligned base64. The server uses it to reject garbage uploads; it says
// nothing about whether the envelope will decrypt.
func CheckEnvelopeShape(envelope models.Envelope) error {
	_, _, encoded, err := splitEnvelope(envelope)
	if err != nil {
		return err
	}

	ciphertext, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil || len(ciphertext) == 0 || len(ciphertext)%aes.BlockSize != 0 {
		return ErrMalformedEnvelope
	}

	return nil
}
