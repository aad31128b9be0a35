// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"

	"github.com/hengadev/errsx"
)

// validate checks that the merged server configuration can be used at
// startup.
func (cfg *StructuredConfig) validate() error {
	var errs errsx.Map

	if cfg.App.TokenSignKey == "" {
		errs.Set("app.token_sign_key", "token sign key is required")
	}
	if cfg.App.TokenDuration <= 0 {
		errs.Set("app.token_duration", "token duration must be positive")
	}
	if cfg.Storage.DB.DSN == "" {
		errs.Set("storage.db.dsn", "storage DSN is required")
	}
	if cfg.Server.HTTPAddress == "" {
		errs.Set("server.http_address", "HTTP address is required")
	}
	if cfg.Server.RequestTimeout <= 0 {
		errs.Set("server.request_timeout", "request timeout must be positive")
	}

	if errs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidServerConfigs, errs.AsError())
}

func (cfg *ClientConfig) validate() error {
	var errs errsx.Map

	if u, err := url.Parse(cfg.Adapter.ServerURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs.Set("adapter.server_url", fmt.Sprintf("invalid server URL %q", cfg.Adapter.ServerURL))
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		errs.Set("adapter.request_timeout", "request timeout must be positive")
	}
	if cfg.Workers.ImportConcurrency < 0 {
		errs.Set("workers.import_concurrency", "import concurrency must not be negative")
	}
	if cfg.Session.KeyringService == "" {
		errs.Set("session.keyring_service", "keyring service is required")
	}

	if errs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidClientConfigs, errs.AsError())
}
