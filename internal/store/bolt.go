// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/secure-vault/internal/logger"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	usersBucket = []byte("users") // login → boltUser
	itemsBucket = []byte("items") // item id → boltItem
)

// BoltDB is an embedded single-file store for small deployments.
type BoltDB struct {
	db     *bolt.DB
	logger *logger.Logger
}

// NewConnectBolt opens or creates the bolt file at path and makes sure all
// buckets exist.
func NewConnectBolt(path string, log *logger.Logger) (*BoltDB, error) {
	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: 5 * time.Second})
	if err != nil {
		log.Err(err).Str("func", "NewConnectBolt").Msg("error opening bolt database")
		return nil, fmt.Errorf("%w: %w", ErrOpeningBoltDatabase, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{usersBucket, itemsBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%w: %w", ErrInitializingBoltStore, err)
	}

	log.Debug().Str("func", "NewConnectBolt").Str("path", path).Msg("bolt database opened")
	return &BoltDB{db: db, logger: log}, nil
}

// Close releases the file lock.
func (b *BoltDB) Close() error {
	return b.db.Close()
}

type boltUser struct {
	UserID       int64     `json:"user_id"`
	Login        string    `json:"login"`
	PasswordHash string    `json:"password_hash"`
	CreatedAt    time.Time `json:"created_at"`
}

type boltItem struct {
	ID        string    `json:"id"`
	OwnerID   int64     `json:"owner_id"`
	Envelope  string    `json:"envelope"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func putJSON(bucket *bolt.Bucket, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingBoltRecord, err)
	}
	return bucket.Put([]byte(key), data)
}

func getJSON(data []byte, v any) error {
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("%w: %w", ErrDecodingBoltRecord, err)
	}
	return nil
}
