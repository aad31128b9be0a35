// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/secure-vault/internal/logger"
	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDB_PlaceholderFormat(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		want    string
	}{
		{name: "postgres uses numbered placeholders", dialect: DialectPostgres, want: "SELECT id FROM vault_items WHERE owner_id = $1 AND id = $2"},
		{name: "sqlite uses question marks", dialect: DialectSQLite, want: "SELECT id FROM vault_items WHERE owner_id = ? AND id = ?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			conn, _, err := sqlmock.New()
			require.NoError(t, err)
			t.Cleanup(func() { conn.Close() })

			db := newDB(conn, tt.dialect, NewPostgresErrorClassifier(), logger.Nop())
			query, args, err := db.builder.Select("id").From("vault_items").
				Where(sq.Eq{"owner_id": int64(5)}).
				Where(sq.Eq{"id": "item-1"}).
				ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.want, query)
			assert.Equal(t, []any{int64(5), "item-1"}, args)
		})
	}
}
