// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"
	"fmt"

	"github.com/zalando/go-keyring"
)

// tokenAccount is the keyring account name under which the token is kept.
const tokenAccount = "session-token"

// KeyringTokenStore stores the token in the OS keyring (Keychain, Secret
// Service or Windows Credential Manager) under service.
type KeyringTokenStore struct {
	service string
}

func NewKeyringTokenStore(service string) *KeyringTokenStore {
	return &KeyringTokenStore{service: service}
}

func (s *KeyringTokenStore) Save(token string) error {
	if err := keyring.Set(s.service, tokenAccount, token); err != nil {
		return fmt.Errorf("error saving session token to keyring: %w", err)
	}
	return nil
}

func (s *KeyringTokenStore) Load() (string, error) {
	token, err := keyring.Get(s.service, tokenAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", ErrNotLoggedIn
	}
	if err != nil {
		return "", fmt.Errorf("error reading session token from keyring: %w", err)
	}
	if token == "" {
		return "", ErrNotLoggedIn
	}
	return token, nil
}

func (s *KeyringTokenStore) Delete() error {
	err := keyring.Delete(s.service, tokenAccount)
	if err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return fmt.Errorf("error deleting session token from keyring: %w", err)
	}
	return nil
}
