// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "errors"

var (
	ErrInvalidTokenParams         = errors.New("invalid params for generating JWT token")
	ErrInvalidToken               = errors.New("invalid token")
	ErrEmptyTokenSubject          = errors.New("empty token subject")
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrInvalidPasswordLength is returned by the password generator when the
	// requested length is outside [MinGeneratedLength, MaxGeneratedLength].
	ErrInvalidPasswordLength = errors.New("invalid generated password length")
	ErrNoCharacterClasses    = errors.New("no character classes selected")
)
