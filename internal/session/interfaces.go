// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session keeps client-side session state. Only the server session
// token is persisted, in the OS keyring; the master password is read from the
// terminal for every command and never stored.
package session

//go:generate mockgen -source=interfaces.go -destination=../mock/session_mock.go -package=mock

// TokenStore persists the session token between client invocations.
type TokenStore interface {
	Save(token string) error

	// Load returns [ErrNotLoggedIn] when no token is stored.
	Load() (string, error)

	// Delete is a no-op when no token is stored.
	Delete() error
}

// Prompter asks the user for input.
type Prompter interface {
	// Password reads a secret without echo.
	Password(prompt string) (string, error)

	// NewPassword reads a secret twice and fails with [ErrPasswordMismatch]
	// when the entries differ.
	NewPassword(prompt string) (string, error)

	// Line reads one line of visible input.
	Line(prompt string) (string, error)
}
