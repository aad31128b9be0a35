// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// backends opens every embedded backend on a fresh file.
func backends(t *testing.T) map[string]*Storages {
	t.Helper()
	dir := t.TempDir()
	ctx := context.Background()

	out := make(map[string]*Storages)
	for name, dsn := range map[string]string{
		"sqlite": "sqlite://" + filepath.Join(dir, "vault.db"),
		"bolt":   "bolt://" + filepath.Join(dir, "vault.bolt"),
	} {
		s, err := NewStorages(ctx, config.DB{DSN: dsn}, logger.Nop())
		require.NoError(t, err, name)
		t.Cleanup(func() { s.Close() })
		out[name] = s
	}
	return out
}

func TestStorages_UserRepository(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			now := time.Now().UTC().Truncate(time.Second)

			alice, err := s.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "hash-a", CreatedAt: now})
			require.NoError(t, err)
			bob, err := s.UserRepository.CreateUser(ctx, models.User{Login: "bob", Password: "hash-b", CreatedAt: now})
			require.NoError(t, err)
			assert.NotZero(t, alice.UserID)
			assert.NotEqual(t, alice.UserID, bob.UserID)

			_, err = s.UserRepository.CreateUser(ctx, models.User{Login: "alice", Password: "x", CreatedAt: now})
			assert.ErrorIs(t, err, ErrLoginAlreadyExists)

			found, err := s.UserRepository.FindUserByLogin(ctx, "alice")
			require.NoError(t, err)
			assert.Equal(t, alice.UserID, found.UserID)
			assert.Equal(t, "hash-a", found.Password)
			assert.True(t, now.Equal(found.CreatedAt))

			_, err = s.UserRepository.FindUserByLogin(ctx, "carol")
			assert.ErrorIs(t, err, ErrUserNotFound)
		})
	}
}

func TestStorages_VaultItemRepository(t *testing.T) {
	for name, s := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			base := time.Now().UTC().Truncate(time.Second)

			owner, err := s.UserRepository.CreateUser(ctx, models.User{Login: "owner", Password: "h", CreatedAt: base})
			require.NoError(t, err)
			other, err := s.UserRepository.CreateUser(ctx, models.User{Login: "other", Password: "h", CreatedAt: base})
			require.NoError(t, err)

			repo := s.VaultItemRepository
			mk := func(id string, ownerID int64, offset time.Duration, tags ...string) models.VaultItem {
				ts := base.Add(offset)
				item, err := repo.Create(ctx, models.VaultItem{
					ID: id, OwnerID: ownerID, Envelope: models.Envelope("env-" + id),
					Tags: tags, CreatedAt: ts, UpdatedAt: ts,
				})
				require.NoError(t, err)
				return item
			}

			mk("a", owner.UserID, 0, "work", "email")
			mk("b", owner.UserID, time.Second, "personal")
			mk("c", owner.UserID, 2*time.Second)
			mk("z", other.UserID, 0, "work", "secret-project")

			_, err = repo.Create(ctx, models.VaultItem{ID: "a", OwnerID: owner.UserID, Envelope: "dup", CreatedAt: base, UpdatedAt: base})
			assert.ErrorIs(t, err, ErrItemAlreadyExists)

			// Get ignores ownership
			got, err := repo.Get(ctx, "z")
			require.NoError(t, err)
			assert.Equal(t, other.UserID, got.OwnerID)
			assert.Equal(t, []string{"secret-project", "work"}, sortedCopy(got.Tags))

			_, err = repo.Get(ctx, "missing")
			assert.ErrorIs(t, err, ErrItemNotFound)

			// List is owner-scoped and ordered by creation
			all, err := repo.List(ctx, models.ListRequest{OwnerID: owner.UserID})
			require.NoError(t, err)
			require.Len(t, all, 3)
			assert.Equal(t, []string{"a", "b", "c"}, ids(all))
			assert.Equal(t, models.Envelope("env-a"), all[0].Envelope)
			assert.Empty(t, all[2].Tags)

			work, err := repo.List(ctx, models.ListRequest{OwnerID: owner.UserID, Tag: "work"})
			require.NoError(t, err)
			assert.Equal(t, []string{"a"}, ids(work))
			assert.Equal(t, []string{"email", "work"}, sortedCopy(work[0].Tags))

			tags, err := repo.ListTags(ctx, owner.UserID)
			require.NoError(t, err)
			assert.Equal(t, []string{"email", "personal", "work"}, tags)

			// Replace swaps envelope and tags, keeps created_at
			later := base.Add(time.Minute)
			replaced, err := repo.Replace(ctx, models.VaultItem{ID: "b", OwnerID: owner.UserID, Envelope: "env-b2", Tags: []string{"finance"}, UpdatedAt: later})
			require.NoError(t, err)
			assert.True(t, base.Add(time.Second).Equal(replaced.CreatedAt))

			got, err = repo.Get(ctx, "b")
			require.NoError(t, err)
			assert.Equal(t, models.Envelope("env-b2"), got.Envelope)
			assert.Equal(t, []string{"finance"}, got.Tags)
			assert.True(t, later.Equal(got.UpdatedAt))

			_, err = repo.Replace(ctx, models.VaultItem{ID: "z", OwnerID: owner.UserID, Envelope: "hijack", UpdatedAt: later})
			assert.ErrorIs(t, err, ErrItemNotFound)
			got, err = repo.Get(ctx, "z")
			require.NoError(t, err)
			assert.Equal(t, models.Envelope("env-z"), got.Envelope)

			// Delete is owner-scoped and takes the tags along
			assert.ErrorIs(t, repo.Delete(ctx, owner.UserID, "z"), ErrItemNotFound)
			require.NoError(t, repo.Delete(ctx, owner.UserID, "a"))
			assert.ErrorIs(t, repo.Delete(ctx, owner.UserID, "a"), ErrItemNotFound)

			tags, err = repo.ListTags(ctx, owner.UserID)
			require.NoError(t, err)
			assert.Equal(t, []string{"finance"}, tags)
		})
	}
}

func TestNewStorages_UnsupportedDSN(t *testing.T) {
	for _, dsn := range []string{"", "vault.db", "mysql://localhost/db"} {
		_, err := NewStorages(context.Background(), config.DB{DSN: dsn}, logger.Nop())
		assert.ErrorIs(t, err, ErrUnsupportedDSN, dsn)
	}
}

func ids(items []models.VaultItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func sortedCopy(s []string) []string {
	out := append([]string(nil), s...)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j] < out[j-1]; j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}
