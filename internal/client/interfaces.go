// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

// VaultView is the interactive vault browser started by the tui command.
type VaultView interface {
	Run(ctx context.Context, filter models.ItemFilter) error
}

// PasswordGenerator produces random secrets for add, edit and generate.
type PasswordGenerator interface {
	Generate(opts utils.PasswordOptions) (string, error)
}
