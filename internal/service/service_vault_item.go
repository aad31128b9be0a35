// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/store"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
)

type vaultItemService struct {
	repository store.VaultItemRepository
	ids        utils.IDGenerator
	now        func() time.Time

	logger *logger.Logger
}

// NewVaultItemService constructs a [VaultItemService]. Requests are assumed
// to be validated; see [NewVaultItemValidationService].
func NewVaultItemService(repository store.VaultItemRepository, ids utils.IDGenerator, logger *logger.Logger) VaultItemService {
	return &vaultItemService{
		repository: repository,
		ids:        ids,
		now:        time.Now,
		logger:     logger,
	}
}

func (s *vaultItemService) Create(ctx context.Context, ownerID int64, req models.StoreItemRequest) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	now := s.now().UTC()
	item := models.VaultItem{
		ID:        s.ids.Generate(),
		OwnerID:   ownerID,
		Envelope:  req.Envelope,
		Tags:      normalizeTags(req.Tags),
		CreatedAt: now,
		UpdatedAt: now,
	}

	created, err := s.repository.Create(ctx, item)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("error creating vault item")
		return models.VaultItem{}, fmt.Errorf("error creating vault item: %w", err)
	}

	log.Debug().Str("item_id", created.ID).Int("envelope_len", len(created.Envelope)).Msg("vault item created")
	return created, nil
}

func (s *vaultItemService) Get(ctx context.Context, ownerID int64, id string) (models.VaultItem, error) {
	return s.owned(ctx, ownerID, id)
}

func (s *vaultItemService) List(ctx context.Context, ownerID int64, tag string) ([]models.VaultItem, error) {
	items, err := s.repository.List(ctx, models.ListRequest{OwnerID: ownerID, Tag: strings.TrimSpace(tag)})
	if err != nil {
		return nil, fmt.Errorf("error listing vault items: %w", err)
	}
	return items, nil
}

func (s *vaultItemService) Replace(ctx context.Context, ownerID int64, id string, req models.StoreItemRequest) (models.VaultItem, error) {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return models.VaultItem{}, err
	}

	replaced, err := s.repository.Replace(ctx, models.VaultItem{
		ID:        id,
		OwnerID:   ownerID,
		Envelope:  req.Envelope,
		Tags:      normalizeTags(req.Tags),
		UpdatedAt: s.now().UTC(),
	})
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error replacing vault item: %w", err)
	}
	return replaced, nil
}

func (s *vaultItemService) Delete(ctx context.Context, ownerID int64, id string) error {
	if _, err := s.owned(ctx, ownerID, id); err != nil {
		return err
	}

	if err := s.repository.Delete(ctx, ownerID, id); err != nil {
		return fmt.Errorf("error deleting vault item: %w", err)
	}
	return nil
}

func (s *vaultItemService) ListTags(ctx context.Context, ownerID int64) ([]string, error) {
	tags, err := s.repository.ListTags(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing tags: %w", err)
	}
	return tags, nil
}

// owned loads id and checks that it belongs to ownerID.
func (s *vaultItemService) owned(ctx context.Context, ownerID int64, id string) (models.VaultItem, error) {
	item, err := s.repository.Get(ctx, id)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("error getting vault item: %w", err)
	}
	if item.OwnerID != ownerID {
		logger.FromContext(ctx).Warn().
			Int64("owner_id", ownerID).
			Str("item_id", id).
			Msg("access to foreign vault item denied")
		return models.VaultItem{}, ErrAccessDenied
	}
	return item, nil
}

// normalizeTags trims tags and drops repeats, keeping first occurrences in
// order.
func normalizeTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]struct{}, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
