// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
)

// Storages bundles the repositories of one backend.
type Storages struct {
	UserRepository      UserRepository
	VaultItemRepository VaultItemRepository

	closer io.Closer
}

// NewStorages opens the backend selected by the DSN scheme, applies
// migrations where the backend has a schema, and wires the repositories.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	scheme, rest, ok := strings.Cut(cfg.DSN, "://")
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDSN, cfg.DSN)
	}

	switch strings.ToLower(scheme) {
	case "postgres", "postgresql":
		db, err := NewConnectPostgres(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case "sqlite", "sqlite3":
		db, err := NewConnectSQLite(ctx, rest, log)
		if err != nil {
			return nil, err
		}
		return newSQLStorages(db, log)

	case "bolt", "bbolt":
		db, err := NewConnectBolt(rest, log)
		if err != nil {
			return nil, err
		}
		return &Storages{
			UserRepository:      NewBoltUserRepository(db),
			VaultItemRepository: NewBoltVaultItemRepository(db),
			closer:              db,
		}, nil
	}

	return nil, fmt.Errorf("%w: scheme %q", ErrUnsupportedDSN, scheme)
}

func newSQLStorages(db *DB, log *logger.Logger) (*Storages, error) {
	if err := db.Migrate(); err != nil {
		log.Err(err).Str("func", "newSQLStorages").Msg("error applying migrations")
		_ = db.Close()
		return nil, err
	}

	return &Storages{
		UserRepository:      NewUserRepository(db, log),
		VaultItemRepository: NewVaultItemRepository(db, log),
		closer:              db,
	}, nil
}

// Close releases the underlying connection.
func (s *Storages) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}
