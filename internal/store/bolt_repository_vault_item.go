// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"slices"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
	bolt "go.etcd.io/bbolt"
)

// boltVaultItemRepository keeps all items in one bucket keyed by id. Listing
// scans the bucket; it is meant for vaults of personal size.
type boltVaultItemRepository struct {
	db *BoltDB
}

// NewBoltVaultItemRepository constructs a [VaultItemRepository] on top of
// bolt.
func NewBoltVaultItemRepository(db *BoltDB) VaultItemRepository {
	db.logger.Debug().Msg("creating bolt vault item repository")
	return &boltVaultItemRepository{db: db}
}

func (r *boltVaultItemRepository) Create(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	err := r.db.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(itemsBucket)
		if bucket.Get([]byte(item.ID)) != nil {
			return ErrItemAlreadyExists
		}
		return putJSON(bucket, item.ID, toBoltItem(item))
	})
	if err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

func (r *boltVaultItemRepository) Get(_ context.Context, id string) (models.VaultItem, error) {
	var stored boltItem
	err := r.db.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(itemsBucket).Get([]byte(id))
		if data == nil {
			return ErrItemNotFound
		}
		return getJSON(data, &stored)
	})
	if err != nil {
		return models.VaultItem{}, err
	}
	return stored.toModel(), nil
}

func (r *boltVaultItemRepository) List(_ context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	items := make([]models.VaultItem, 0)
	err := r.db.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(itemsBucket).ForEach(func(_, data []byte) error {
			var stored boltItem
			if err := getJSON(data, &stored); err != nil {
				return err
			}
			if stored.OwnerID != req.OwnerID {
				return nil
			}
			if req.Tag != "" && !slices.Contains(stored.Tags, req.Tag) {
				return nil
			}
			items = append(items, stored.toModel())
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	slices.SortStableFunc(items, func(a, b models.VaultItem) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return strings.Compare(a.ID, b.ID)
	})
	return items, nil
}

func (r *boltVaultItemRepository) Replace(_ context.Context, item models.VaultItem) (models.VaultItem, error) {
	err := r.db.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(itemsBucket)
		data := bucket.Get([]byte(item.ID))
		if data == nil {
			return ErrItemNotFound
		}

		var stored boltItem
		if err := getJSON(data, &stored); err != nil {
			return err
		}
		if stored.OwnerID != item.OwnerID {
			return ErrItemNotFound
		}

		item.CreatedAt = stored.CreatedAt
		return putJSON(bucket, item.ID, toBoltItem(item))
	})
	if err != nil {
		return models.VaultItem{}, err
	}
	return item, nil
}

func (r *boltVaultItemRepository) Delete(_ context.Context, ownerID int64, id string) error {
	return r.db.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(itemsBucket)
		data := bucket.Get([]byte(id))
		if data == nil {
			return ErrItemNotFound
		}

		var stored boltItem
		if err := getJSON(data, &stored); err != nil {
			return err
		}
		if stored.OwnerID != ownerID {
			return ErrItemNotFound
		}
		return bucket.Delete([]byte(id))
	})
}

func (r *boltVaultItemRepository) ListTags(ctx context.Context, ownerID int64) ([]string, error) {
	items, err := r.List(ctx, models.ListRequest{OwnerID: ownerID})
	if err != nil {
		return nil, err
	}

	tags := make([]string, 0)
	for _, item := range items {
		tags = append(tags, item.Tags...)
	}
	slices.Sort(tags)
	return slices.Compact(tags), nil
}

func toBoltItem(item models.VaultItem) boltItem {
	return boltItem{
		ID:        item.ID,
		OwnerID:   item.OwnerID,
		Envelope:  string(item.Envelope),
		Tags:      item.Tags,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func (b boltItem) toModel() models.VaultItem {
	tags := b.Tags
	if tags == nil {
		tags = []string{}
	}
	return models.VaultItem{
		ID:        b.ID,
		OwnerID:   b.OwnerID,
		Envelope:  models.Envelope(b.Envelope),
		Tags:      tags,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}
