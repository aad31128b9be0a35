// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// VaultItem is the persistence model of a single stored credential. It is the
// only shape in which vault data crosses the trust boundary: the envelope is
// opaque to the server and the tags are plain labels.
type VaultItem struct {
	// ID is the server-assigned identifier (UUID v7).
	ID string `json:"id"`

	// OwnerID is the user the item belongs to. Never accepted from clients.
	OwnerID int64 `json:"-"`

	// Envelope holds the encrypted record.
	Envelope Envelope `json:"envelope"`

	// Tags are unencrypted classification labels.
	Tags []string `json:"tags"`

	// CreatedAt is the timestamp when the item was created.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp of the last wholesale replacement.
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table associated with
// [VaultItem].
func (v VaultItem) TableName() string {
	return "vault_items"
}

// StoreItemRequest is the body of create and replace requests.
type StoreItemRequest struct {
	Envelope Envelope `json:"envelope"`
	Tags     []string `json:"tags"`
}

// ListRequest selects the items of one owner, optionally narrowed to a tag.
type ListRequest struct {
	OwnerID int64
	Tag     string
}

// DecryptedItem is a [VaultItem] opened on the client.
type DecryptedItem struct {
	ID        string
	Record    Record
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ItemFilter narrows a client-side listing. Tag is applied by the server,
// Search locally on decrypted titles and usernames.
type ItemFilter struct {
	Tag    string
	Search string
}
