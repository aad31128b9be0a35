// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds the settings used by the client transport layer.
type ClientAdapter struct {
	// ServerURL is the base URL of the vault server.
	ServerURL string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
}

// ClientWorkers contains client bulk-operation settings.
type ClientWorkers struct {
	// ImportConcurrency bounds parallel import of backup items.
	ImportConcurrency int
}

// ClientSession contains client session storage settings.
type ClientSession struct {
	// KeyringService is the OS keyring service name.
	KeyringService string
}

// ClientConfig is the client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	Adapter ClientAdapter
	Workers ClientWorkers
	Session ClientSession
}

// GetClientConfig builds and validates the client configuration. overrides
// carries values set through command-line flags and takes precedence over
// the environment and the config file; it may be nil.
func GetClientConfig(overrides *StructuredConfig) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv().
		withConfig(overrides).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			ServerURL:      cfg.Adapter.ServerURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Workers: ClientWorkers{
			ImportConcurrency: cfg.Workers.ImportConcurrency,
		},
		Session: ClientSession{
			KeyringService: cfg.Session.KeyringService,
		},
	}

	return clientCfg, clientCfg.validate()
}
