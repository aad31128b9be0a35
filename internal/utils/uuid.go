// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "github.com/google/uuid"

// IDGenerator assigns ids to new vault items.
type IDGenerator interface {
	Generate() string
}

// ItemIDs issues UUID v7 ids, so items created later sort after earlier ones.
type ItemIDs struct{}

func NewItemIDs() ItemIDs { return ItemIDs{} }

func (ItemIDs) Generate() string {
	if id, err := uuid.NewV7(); err == nil {
		return id.String()
	}
	return uuid.NewString()
}
