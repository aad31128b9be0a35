// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
)

func TestValidateRecord(t *testing.T) {
	tests := []struct {
		name    string
		record  models.Record
		wantErr bool
	}{
		{name: "valid", record: models.Record{Title: "Bank", Username: "alice", Secret: "p@ss1"}},
		{name: "valid with optional fields", record: models.Record{Title: "Bank", Username: "alice", Secret: "p", URL: "https://bank", Notes: "n", Tags: []string{"finance"}}},
		{name: "missing title", record: models.Record{Username: "alice", Secret: "p"}, wantErr: true},
		{name: "blank username", record: models.Record{Title: "Bank", Username: "   ", Secret: "p"}, wantErr: true},
		{name: "missing secret", record: models.Record{Title: "Bank", Username: "alice"}, wantErr: true},
		{name: "all missing", record: models.Record{}, wantErr: true},
		{name: "empty tag", record: models.Record{Title: "Bank", Username: "alice", Secret: "p", Tags: []string{""}}, wantErr: true},
		{name: "long tag", record: models.Record{Title: "Bank", Username: "alice", Secret: "p", Tags: []string{strings.Repeat("t", MaxTagLength+1)}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRecord(tt.record)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidRecord)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestVaultValidator_Validate(t *testing.T) {
	v := NewVaultValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.Record{Title: "a", Username: "b", Secret: "c"}))
	assert.ErrorIs(t, v.Validate(ctx, &models.Record{}), ErrInvalidRecord)

	// restricting to a single field ignores the others
	assert.NoError(t, v.Validate(ctx, models.Record{Title: "only"}, FieldTitle))
	assert.ErrorIs(t, v.Validate(ctx, models.Record{Title: "only"}, "bogus"), ErrUnknownField)

	assert.NoError(t, v.Validate(ctx, models.StoreItemRequest{Envelope: "abc", Tags: []string{"x"}}))
	assert.ErrorIs(t, v.Validate(ctx, &models.StoreItemRequest{}), ErrInvalidItem)
	tooMany := make([]string, MaxTags+1)
	for i := range tooMany {
		tooMany[i] = "t"
	}
	assert.ErrorIs(t, v.Validate(ctx, models.StoreItemRequest{Envelope: "abc", Tags: tooMany}), ErrInvalidItem)

	assert.NoError(t, v.Validate(ctx, models.User{Login: "alice", Password: "longenough"}))
	assert.ErrorIs(t, v.Validate(ctx, models.User{Login: "alice", Password: "short"}), ErrInvalidUser)
	assert.ErrorIs(t, v.Validate(ctx, &models.User{Password: "longenough"}), ErrInvalidUser)

	assert.ErrorIs(t, v.Validate(ctx, 42), ErrUnsupportedType)
}

func TestFieldNamesAreDistinct(t *testing.T) {
	fields := []string{FieldTitle, FieldUsername, FieldSecret, FieldTags, FieldEnvelope, FieldLogin, FieldAccountPassword}

	seen := make(map[string]bool, len(fields))
	for _, f := range fields {
		assert.False(t, seen[f], "duplicate field name %q", f)
		seen[f] = true
	}
}
