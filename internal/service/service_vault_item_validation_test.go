// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validEnvelope(t *testing.T) models.Envelope {
	t.Helper()
	envelope, err := crypto.NewEnvelopeCipher().Encrypt(models.Record{
		Title:    "Bank",
		Username: "alice",
		Secret:   "s3cret",
	}, "master")
	require.NoError(t, err)
	return envelope
}

func TestVaultItemValidationService_Create(t *testing.T) {
	envelope := validEnvelope(t)

	tests := []struct {
		name      string
		ownerID   int64
		req       models.StoreItemRequest
		wantErr   error
		wantInner bool
	}{
		{
			name:      "valid request",
			ownerID:   1,
			req:       models.StoreItemRequest{Envelope: envelope, Tags: []string{"bank"}},
			wantInner: true,
		},
		{
			name:    "no owner",
			req:     models.StoreItemRequest{Envelope: envelope},
			wantErr: ErrNoUserID,
		},
		{
			name:    "empty envelope",
			ownerID: 1,
			req:     models.StoreItemRequest{},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "short envelope",
			ownerID: 1,
			req:     models.StoreItemRequest{Envelope: "abcd"},
			wantErr: crypto.ErrMalformedEnvelope,
		},
		{
			name:    "non-hex header",
			ownerID: 1,
			req:     models.StoreItemRequest{Envelope: models.Envelope(strings.Repeat("z", 64)) + "AAAA"},
			wantErr: ErrInvalidDataProvided,
		},
		{
			name:    "empty tag",
			ownerID: 1,
			req:     models.StoreItemRequest{Envelope: envelope, Tags: []string{" "}},
			wantErr: ErrInvalidDataProvided,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			inner := mock.NewMockVaultItemService(ctrl)
			svc := NewVaultItemValidationService().Wrap(inner)

			if tt.wantInner {
				inner.EXPECT().Create(gomock.Any(), tt.ownerID, tt.req).Return(models.VaultItem{ID: "item-1"}, nil)
			}

			item, err := svc.Create(context.Background(), tt.ownerID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "item-1", item.ID)
		})
	}
}

func TestVaultItemValidationService_Identity(t *testing.T) {
	ctrl := gomock.NewController(t)
	inner := mock.NewMockVaultItemService(ctrl)
	svc := NewVaultItemValidationService().Wrap(inner)
	ctx := context.Background()

	_, err := svc.Get(ctx, 0, "item-1")
	assert.ErrorIs(t, err, ErrNoUserID)

	_, err = svc.Get(ctx, 1, " ")
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	assert.ErrorIs(t, svc.Delete(ctx, 1, ""), ErrInvalidDataProvided)

	_, err = svc.List(ctx, 0, "")
	assert.ErrorIs(t, err, ErrNoUserID)

	_, err = svc.ListTags(ctx, 0)
	assert.ErrorIs(t, err, ErrNoUserID)

	_, err = svc.Replace(ctx, 1, "item-1", models.StoreItemRequest{Envelope: "abcd"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)

	inner.EXPECT().Delete(ctx, int64(1), "item-1").Return(nil)
	assert.NoError(t, svc.Delete(ctx, 1, "item-1"))

	inner.EXPECT().ListTags(ctx, int64(1)).Return([]string{"work"}, nil)
	tags, err := svc.ListTags(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"work"}, tags)
}

func TestAppInfoService_GetAppVersion(t *testing.T) {
	info := models.NewAppBuildInfo("v1.2.0", "", "abc123")

	got := NewAppInfoService(info, "", nil).GetAppVersion(context.Background())
	assert.Equal(t, models.VersionResponse{Version: "v1.2.0", Date: "N/A", Commit: "abc123"}, got)

	got = NewAppInfoService(info, "v9", nil).GetAppVersion(context.Background())
	assert.Equal(t, "v9", got.Version)
}
