// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/rekey"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/internal/workers"
)

// ClientServices bundles the client services.
type ClientServices struct {
	AuthService  ClientAuthService
	VaultService ClientVaultService
}

func NewClientServices(serverAdapter adapter.ServerAdapter, tokenStore session.TokenStore, cfg *config.ClientConfig, logger *logger.Logger) *ClientServices {
	cipher := crypto.NewEnvelopeCipher()
	policy := rekey.NewPolicy(cipher, workers.NewPool(cfg.Workers.ImportConcurrency), logger)

	return &ClientServices{
		AuthService:  NewClientAuthService(serverAdapter, tokenStore, logger),
		VaultService: NewClientVaultService(serverAdapter, cipher, policy, logger),
	}
}
