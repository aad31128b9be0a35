// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

// vaultItemRepository is the SQL implementation of [VaultItemRepository].
// Tags live in a separate table so they can be filtered on without touching
// envelopes.
type vaultItemRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewVaultItemRepository constructs a [VaultItemRepository] backed by db.
func NewVaultItemRepository(db *DB, logger *logger.Logger) VaultItemRepository {
	logger.Debug().Msg("creating vault item repository")
	return &vaultItemRepository{
		db:     db,
		logger: logger,
	}
}

func (r *vaultItemRepository) Create(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	itemQuery, itemArgs, err := r.db.insertItemQuery(item).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, itemQuery, itemArgs...); err != nil {
			if r.db.errorClassifier.IsUniqueViolation(err) {
				return ErrItemAlreadyExists
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return r.insertTags(ctx, tx, item.ID, item.Tags)
	})
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.Create").Str("item_id", item.ID).Msg("error creating vault item")
		return models.VaultItem{}, err
	}

	return item, nil
}

func (r *vaultItemRepository) Get(ctx context.Context, id string) (models.VaultItem, error) {
	query, args, err := r.db.getItemQuery(id).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var item models.VaultItem
	err = r.db.QueryRowContext(ctx, query, args...).Scan(scanTargets(&item)...)
	if errors.Is(err, sql.ErrNoRows) {
		return models.VaultItem{}, ErrItemNotFound
	}
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	tagsQuery, tagsArgs, err := r.db.itemTagsQuery(id).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	rows, err := r.db.QueryContext(ctx, tagsQuery, tagsArgs...)
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	item.Tags = []string{}
	for rows.Next() {
		var tag string
		if err = rows.Scan(&tag); err != nil {
			return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Tags = append(item.Tags, tag)
	}
	if err = rows.Err(); err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return item, nil
}

func (r *vaultItemRepository) List(ctx context.Context, req models.ListRequest) ([]models.VaultItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.listItemsQuery(req).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*vaultItemRepository.List").Msg("error selecting vault items")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	items := make([]models.VaultItem, 0)
	index := make(map[string]int)
	for rows.Next() {
		var item models.VaultItem
		if err = rows.Scan(scanTargets(&item)...); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		item.Tags = []string{}
		index[item.ID] = len(items)
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	if len(items) == 0 {
		return items, nil
	}

	if err = r.attachTags(ctx, req.OwnerID, items, index); err != nil {
		return nil, err
	}
	return items, nil
}

// attachTags loads all tags of the owner in one query and distributes them
// over items. Tags of items not in the slice are skipped.
func (r *vaultItemRepository) attachTags(ctx context.Context, ownerID int64, items []models.VaultItem, index map[string]int) error {
	query, args, err := r.db.ownerTagsQuery(ownerID).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var itemID, tag string
		if err = rows.Scan(&itemID, &tag); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		if i, ok := index[itemID]; ok {
			items[i].Tags = append(items[i].Tags, tag)
		}
	}
	if err = rows.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return nil
}

func (r *vaultItemRepository) Replace(ctx context.Context, item models.VaultItem) (models.VaultItem, error) {
	log := logger.FromContext(ctx)

	updateQuery, updateArgs, err := r.db.replaceItemQuery(item).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	createdQuery, createdArgs, err := r.db.itemCreatedAtQuery(item.ID).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	deleteQuery, deleteArgs, err := r.db.deleteTagsQuery(item.ID).ToSql()
	if err != nil {
		return models.VaultItem{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	err = r.db.inTx(ctx, func(tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx, updateQuery, updateArgs...)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		// a foreign owner looks the same as a missing item
		if n == 0 {
			return ErrItemNotFound
		}

		if err = tx.QueryRowContext(ctx, createdQuery, createdArgs...).Scan(&item.CreatedAt); err != nil {
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		return r.insertTags(ctx, tx, item.ID, item.Tags)
	})
	if err != nil {
		if !errors.Is(err, ErrItemNotFound) {
			log.Err(err).Str("func", "*vaultItemRepository.Replace").Str("item_id", item.ID).Msg("error replacing vault item")
		}
		return models.VaultItem{}, err
	}

	return item, nil
}

func (r *vaultItemRepository) Delete(ctx context.Context, ownerID int64, id string) error {
	query, args, err := r.db.deleteItemQuery(ownerID, id).ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	// tags go with the item through ON DELETE CASCADE
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrItemNotFound
	}
	return nil
}

func (r *vaultItemRepository) ListTags(ctx context.Context, ownerID int64) ([]string, error) {
	query, args, err := r.db.distinctTagsQuery(ownerID).ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	tags := make([]string, 0)
	for rows.Next() {
		var tag string
		if err = rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		tags = append(tags, tag)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}
	return tags, nil
}

func (r *vaultItemRepository) insertTags(ctx context.Context, tx *sql.Tx, itemID string, tags []string) error {
	q, ok := r.db.insertTagsQuery(itemID, tags)
	if !ok {
		return nil
	}

	query, args, err := q.ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func scanTargets(item *models.VaultItem) []any {
	return []any{&item.ID, &item.OwnerID, &item.Envelope, &item.CreatedAt, &item.UpdatedAt}
}
