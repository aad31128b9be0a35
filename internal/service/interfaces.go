// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the business logic of the server and the client.
//
// Server services own accounts and vault item persistence; they treat
// envelopes as opaque strings and only check their shape. Client services own
// every cryptographic operation and talk to the server through
// [adapter.ServerAdapter].
package service

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// AuthService registers and authenticates accounts and issues session
// tokens.
type AuthService interface {
	// RegisterUser stores a new account with a bcrypt hash of its password.
	RegisterUser(ctx context.Context, user models.User) (models.User, error)

	// Login returns the stored account when the password matches. A missing
	// login and a wrong password both yield [ErrWrongPassword].
	Login(ctx context.Context, user models.User) (models.User, error)

	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// ParseToken normalizes every validation failure to
	// [ErrTokenIsExpiredOrInvalid].
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// VaultItemService manages the items of one owner. Items of other owners are
// reported as [ErrAccessDenied].
type VaultItemService interface {
	Create(ctx context.Context, ownerID int64, req models.StoreItemRequest) (models.VaultItem, error)
	Get(ctx context.Context, ownerID int64, id string) (models.VaultItem, error)
	List(ctx context.Context, ownerID int64, tag string) ([]models.VaultItem, error)

	// Replace swaps envelope and tags wholesale; CreatedAt is kept.
	Replace(ctx context.Context, ownerID int64, id string, req models.StoreItemRequest) (models.VaultItem, error)
	Delete(ctx context.Context, ownerID int64, id string) error
	ListTags(ctx context.Context, ownerID int64) ([]string, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) models.VersionResponse
}
