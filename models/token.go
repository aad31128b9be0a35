// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified session token.
//
// UserID is the owner parsed from the "sub" claim; it is the only claim
// the vault handlers rely on.
type Token struct {
	*jwt.Token `json:"-"`
	jwt.RegisteredClaims

	SignedString string `json:"-"`
	UserID       int64  `json:"-"`
}

// String returns the compact JWS form sent as the bearer token.
func (t *Token) String() string {
	return t.SignedString
}
