// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the vault server on behalf of the client.
//
// [ServerAdapter] hides the transport from the client services. The HTTP
// implementation ([NewHTTPServerAdapter]) maps response status codes to the
// sentinel errors in errors.go, so callers use [errors.Is] instead of
// inspecting status codes.
package adapter

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client-side view of the vault server API. Envelopes
// pass through unchanged; the adapter never sees plaintext.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)
	Token() string

	// Register creates an account and returns the issued session token, which
	// is also stored via SetToken.
	Register(ctx context.Context, user models.User) (string, error)

	// Login authenticates and returns the issued session token, which is also
	// stored via SetToken.
	Login(ctx context.Context, user models.User) (string, error)

	// ListItems returns the caller's items, narrowed to tag when it is not
	// empty.
	ListItems(ctx context.Context, tag string) ([]models.VaultItem, error)
	GetItem(ctx context.Context, id string) (models.VaultItem, error)
	CreateItem(ctx context.Context, req models.StoreItemRequest) (models.VaultItem, error)

	// ReplaceItem swaps the envelope and tags of an existing item wholesale.
	ReplaceItem(ctx context.Context, id string, req models.StoreItemRequest) (models.VaultItem, error)
	DeleteItem(ctx context.Context, id string) error
	ListTags(ctx context.Context) ([]string, error)

	Version(ctx context.Context) (models.VersionResponse, error)
}
