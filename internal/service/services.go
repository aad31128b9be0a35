// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

// Services bundles the server services.
type Services struct {
	AuthService      AuthService
	VaultItemService VaultItemService
	AppInfoService   AppInfoService
}

// NewServices wires the server services on top of storages. The vault item
// service is wrapped with request validation.
func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	vaultItemService := NewVaultItemService(storages.VaultItemRepository, utils.NewItemIDs(), logger)

	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, cfg.App, logger),
		VaultItemService: NewVaultItemValidationService().Wrap(vaultItemService),
		AppInfoService:   NewAppInfoService(buildInfo, cfg.App.Version, logger),
	}
}
