// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/secure-vault/models"
	bolt "go.etcd.io/bbolt"
)

type boltUserRepository struct {
	db *BoltDB
}

// NewBoltUserRepository constructs a [UserRepository] on top of bolt.
func NewBoltUserRepository(db *BoltDB) UserRepository {
	db.logger.Debug().Msg("creating bolt user repository")
	return &boltUserRepository{db: db}
}

func (r *boltUserRepository) CreateUser(_ context.Context, user models.User) (models.User, error) {
	err := r.db.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(usersBucket)
		if bucket.Get([]byte(user.Login)) != nil {
			return ErrLoginAlreadyExists
		}

		seq, err := bucket.NextSequence()
		if err != nil {
			return err
		}
		user.UserID = int64(seq)

		return putJSON(bucket, user.Login, boltUser{
			UserID:       user.UserID,
			Login:        user.Login,
			PasswordHash: user.Password,
			CreatedAt:    user.CreatedAt,
		})
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *boltUserRepository) FindUserByLogin(_ context.Context, login string) (models.User, error) {
	var stored boltUser
	err := r.db.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(usersBucket).Get([]byte(login))
		if data == nil {
			return ErrUserNotFound
		}
		return getJSON(data, &stored)
	})
	if err != nil {
		return models.User{}, err
	}

	return models.User{
		UserID:    stored.UserID,
		Login:     stored.Login,
		Password:  stored.PasswordHash,
		CreatedAt: stored.CreatedAt,
	}, nil
}
