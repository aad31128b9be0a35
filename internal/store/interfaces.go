// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists account credentials.
type UserRepository interface {
	// CreateUser stores user (whose Password is already a hash) and returns
	// it with UserID and CreatedAt populated. Returns
	// [ErrLoginAlreadyExists] for a taken login.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByLogin returns the user with the given login or
	// [ErrUserNotFound].
	FindUserByLogin(ctx context.Context, login string) (models.User, error)
}

// VaultItemRepository persists encrypted vault items. Envelopes are opaque to
// every implementation.
type VaultItemRepository interface {
	// Create stores a new item. ID, OwnerID and timestamps must be set.
	Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Get returns the item with the given id regardless of owner, or
	// [ErrItemNotFound]. Ownership is checked by the caller.
	Get(ctx context.Context, id string) (models.VaultItem, error)

	// List returns the owner's items in creation order, optionally only
	// those carrying req.Tag.
	List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error)

	// Replace overwrites envelope and tags of an item owned by
	// item.OwnerID. Returns [ErrItemNotFound] if there is no such item.
	Replace(ctx context.Context, item models.VaultItem) (models.VaultItem, error)

	// Delete removes an item owned by ownerID, or returns [ErrItemNotFound].
	Delete(ctx context.Context, ownerID int64, id string) error

	// ListTags returns the distinct tags used by the owner, sorted.
	ListTags(ctx context.Context, ownerID int64) ([]string, error)
}

// ErrorClassifier maps driver errors onto storage semantics.
type ErrorClassifier interface {
	// Classify decides whether a failed operation may be retried.
	Classify(err error) ErrorClassification

	// IsUniqueViolation reports whether err is a unique constraint failure.
	IsUniqueViolation(err error) bool
}
