// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/rekey"
	"github.com/MKhiriev/secure-vault/models"
)

// BackupFilePrefix and BackupFileLayout name export files:
// secure-vault-backup-2026-01-31.txt.
const (
	BackupFilePrefix = "secure-vault-backup-"
	BackupFileLayout = "2006-01-02"
	BackupFileExt    = ".txt"
)

type clientVaultService struct {
	adapter adapter.ServerAdapter
	cipher  crypto.Cipher
	policy  rekey.Policy
	now     func() time.Time

	logger *logger.Logger
}

func NewClientVaultService(serverAdapter adapter.ServerAdapter, cipher crypto.Cipher, policy rekey.Policy, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		adapter: serverAdapter,
		cipher:  cipher,
		policy:  policy,
		now:     time.Now,
		logger:  logger,
	}
}

func (s *clientVaultService) Add(ctx context.Context, record models.Record, password string) (models.VaultItem, error) {
	envelope, err := s.cipher.Encrypt(record, password)
	if err != nil {
		return models.VaultItem{}, err
	}

	item, err := s.adapter.CreateItem(ctx, models.StoreItemRequest{Envelope: envelope, Tags: record.Tags})
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("upload item: %w", err)
	}
	return item, nil
}

func (s *clientVaultService) List(ctx context.Context, filter models.ItemFilter, password string) ([]models.DecryptedItem, error) {
	if password == "" {
		return nil, crypto.ErrEmptyMasterPassword
	}

	items, err := s.adapter.ListItems(ctx, filter.Tag)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}

	out := make([]models.DecryptedItem, 0, len(items))
	for _, item := range items {
		decrypted, err := s.open(item, password)
		if err != nil {
			s.logger.Debug().Str("func", "*clientVaultService.List").Str("item_id", item.ID).Msg("item could not be decrypted")
			return nil, err
		}
		if decrypted.Record.Matches(filter.Search) {
			out = append(out, decrypted)
		}
	}
	return out, nil
}

func (s *clientVaultService) Show(ctx context.Context, id string, password string) (models.DecryptedItem, error) {
	if password == "" {
		return models.DecryptedItem{}, crypto.ErrEmptyMasterPassword
	}

	item, err := s.adapter.GetItem(ctx, id)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("get item: %w", err)
	}
	return s.open(item, password)
}

func (s *clientVaultService) Edit(ctx context.Context, id string, password string, mutate func(*models.Record) error) (models.DecryptedItem, error) {
	if mutate == nil {
		return models.DecryptedItem{}, rekey.ErrNilMutation
	}

	item, err := s.adapter.GetItem(ctx, id)
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("get item: %w", err)
	}

	// the edited record carries the tags sent next to the envelope
	var edited models.Record
	envelope, err := s.policy.Edit(item.Envelope, password, func(record *models.Record) error {
		record.Tags = item.Tags
		if err := mutate(record); err != nil {
			return err
		}
		edited = *record
		return nil
	})
	if err != nil {
		return models.DecryptedItem{}, err
	}

	replaced, err := s.adapter.ReplaceItem(ctx, id, models.StoreItemRequest{Envelope: envelope, Tags: edited.Tags})
	if err != nil {
		return models.DecryptedItem{}, fmt.Errorf("replace item: %w", err)
	}

	edited.Tags = replaced.Tags
	return models.DecryptedItem{
		ID:        replaced.ID,
		Record:    edited,
		CreatedAt: replaced.CreatedAt,
		UpdatedAt: replaced.UpdatedAt,
	}, nil
}

func (s *clientVaultService) Delete(ctx context.Context, id string) error {
	if err := s.adapter.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}
	return nil
}

func (s *clientVaultService) Tags(ctx context.Context) ([]string, error) {
	tags, err := s.adapter.ListTags(ctx)
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (s *clientVaultService) Export(ctx context.Context, password string, dir string) (string, error) {
	items, err := s.adapter.ListItems(ctx, "")
	if err != nil {
		return "", fmt.Errorf("list items: %w", err)
	}

	backup, err := s.policy.Export(ctx, items, password)
	if err != nil {
		return "", err
	}

	path := filepath.Join(dir, BackupFileName(s.now()))
	if err = os.WriteFile(path, []byte(backup), 0o600); err != nil {
		return "", fmt.Errorf("write backup: %w", err)
	}

	s.logger.Info().Str("path", path).Int("items", len(items)).Msg("vault exported")
	return path, nil
}

func (s *clientVaultService) Import(ctx context.Context, path string, backupPassword, currentPassword string) (models.ImportReport, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.ImportReport{}, fmt.Errorf("read backup: %w", err)
	}

	backup := models.Envelope(strings.TrimSpace(string(data)))
	return s.policy.Import(ctx, backup, backupPassword, currentPassword, s)
}

// Store implements [rekey.ItemSink] by uploading each re-encrypted record.
func (s *clientVaultService) Store(ctx context.Context, envelope models.Envelope, tags []string) error {
	if _, err := s.adapter.CreateItem(ctx, models.StoreItemRequest{Envelope: envelope, Tags: tags}); err != nil {
		return fmt.Errorf("upload item: %w", err)
	}
	return nil
}

func (s *clientVaultService) open(item models.VaultItem, password string) (models.DecryptedItem, error) {
	record, err := s.cipher.Decrypt(item.Envelope, password)
	if err != nil {
		return models.DecryptedItem{}, err
	}

	// server-side tags are authoritative, they are what filtering uses
	record.Tags = item.Tags
	return models.DecryptedItem{
		ID:        item.ID,
		Record:    record,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}, nil
}

// BackupFileName returns the export file name for day t.
func BackupFileName(t time.Time) string {
	return BackupFilePrefix + t.Format(BackupFileLayout) + BackupFileExt
}
