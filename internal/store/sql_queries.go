// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/secure-vault/models"
)

const (
	usersTable = "users"
	itemsTable = "vault_items"
	tagsTable  = "vault_item_tags"
)

var itemColumns = []string{"id", "owner_id", "envelope", "created_at", "updated_at"}

// Queries are built per dialect so the same code emits $n placeholders for
// PostgreSQL and ? for SQLite.

func (db *DB) createUserQuery(user models.User) sq.InsertBuilder {
	return db.builder.Insert(usersTable).
		Columns("login", "password_hash", "created_at").
		Values(user.Login, user.Password, user.CreatedAt).
		Suffix("RETURNING user_id")
}

func (db *DB) findUserByLoginQuery(login string) sq.SelectBuilder {
	return db.builder.Select("user_id", "login", "password_hash", "created_at").
		From(usersTable).
		Where(sq.Eq{"login": login})
}

func (db *DB) insertItemQuery(item models.VaultItem) sq.InsertBuilder {
	return db.builder.Insert(itemsTable).
		Columns(itemColumns...).
		Values(item.ID, item.OwnerID, string(item.Envelope), item.CreatedAt, item.UpdatedAt)
}

// insertTagsQuery returns false when there is nothing to insert.
func (db *DB) insertTagsQuery(itemID string, tags []string) (sq.InsertBuilder, bool) {
	q := db.builder.Insert(tagsTable).Columns("item_id", "tag")
	for _, tag := range tags {
		q = q.Values(itemID, tag)
	}
	return q, len(tags) > 0
}

func (db *DB) getItemQuery(id string) sq.SelectBuilder {
	return db.builder.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) itemTagsQuery(id string) sq.SelectBuilder {
	return db.builder.Select("tag").
		From(tagsTable).
		Where(sq.Eq{"item_id": id}).
		OrderBy("tag")
}

func (db *DB) listItemsQuery(req models.ListRequest) sq.SelectBuilder {
	q := db.builder.Select(itemColumns...).
		From(itemsTable).
		Where(sq.Eq{"owner_id": req.OwnerID})

	if req.Tag != "" {
		sub := sq.Select("item_id").From(tagsTable).Where(sq.Eq{"tag": req.Tag})
		q = q.Where(sq.Expr("id IN (?)", sub))
	}

	return q.OrderBy("created_at", "id")
}

func (db *DB) ownerTagsQuery(ownerID int64) sq.SelectBuilder {
	return db.builder.Select("t.item_id", "t.tag").
		From(tagsTable + " t").
		Join(itemsTable + " i ON i.id = t.item_id").
		Where(sq.Eq{"i.owner_id": ownerID}).
		OrderBy("t.tag")
}

func (db *DB) distinctTagsQuery(ownerID int64) sq.SelectBuilder {
	return db.builder.Select("t.tag").
		Distinct().
		From(tagsTable + " t").
		Join(itemsTable + " i ON i.id = t.item_id").
		Where(sq.Eq{"i.owner_id": ownerID}).
		OrderBy("t.tag")
}

func (db *DB) replaceItemQuery(item models.VaultItem) sq.UpdateBuilder {
	return db.builder.Update(itemsTable).
		Set("envelope", string(item.Envelope)).
		Set("updated_at", item.UpdatedAt).
		Where(sq.Eq{"id": item.ID, "owner_id": item.OwnerID})
}

func (db *DB) itemCreatedAtQuery(id string) sq.SelectBuilder {
	return db.builder.Select("created_at").
		From(itemsTable).
		Where(sq.Eq{"id": id})
}

func (db *DB) deleteTagsQuery(itemID string) sq.DeleteBuilder {
	return db.builder.Delete(tagsTable).Where(sq.Eq{"item_id": itemID})
}

func (db *DB) deleteItemQuery(ownerID int64, id string) sq.DeleteBuilder {
	return db.builder.Delete(itemsTable).Where(sq.Eq{"id": id, "owner_id": ownerID})
}
