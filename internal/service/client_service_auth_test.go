// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/mock"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestClientAuthService(t *testing.T, ctrl *gomock.Controller) (ClientAuthService, *mock.MockServerAdapter, *mock.MockTokenStore) {
	t.Helper()
	serverAdapter := mock.NewMockServerAdapter(ctrl)
	tokenStore := mock.NewMockTokenStore(ctrl)
	return NewClientAuthService(serverAdapter, tokenStore, logger.Nop()), serverAdapter, tokenStore
}

func TestClientAuthService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokenStore := newTestClientAuthService(t, ctrl)
	ctx := context.Background()
	user := models.User{Login: "alice", Password: "correct-horse"}

	gomock.InOrder(
		serverAdapter.EXPECT().Register(ctx, user).Return("jwt-token", nil),
		tokenStore.EXPECT().Save("jwt-token").Return(nil),
	)

	require.NoError(t, svc.Register(ctx, user))
}

func TestClientAuthService_Register_InvalidUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestClientAuthService(t, ctrl)

	err := svc.Register(context.Background(), models.User{Login: "alice", Password: "short"})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
}

func TestClientAuthService_Register_Conflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, _ := newTestClientAuthService(t, ctrl)

	serverAdapter.EXPECT().Register(gomock.Any(), gomock.Any()).Return("", adapter.ErrConflict)

	err := svc.Register(context.Background(), models.User{Login: "alice", Password: "correct-horse"})
	assert.ErrorIs(t, err, adapter.ErrConflict)
}

func TestClientAuthService_Login(t *testing.T) {
	tests := []struct {
		name     string
		user     models.User
		loginErr error
		saveErr  error
		wantErr  error
	}{
		{name: "success", user: models.User{Login: "alice", Password: "pw"}},
		{name: "empty password", user: models.User{Login: "alice"}, wantErr: ErrInvalidDataProvided},
		{name: "unauthorized", user: models.User{Login: "alice", Password: "pw"}, loginErr: adapter.ErrUnauthorized, wantErr: adapter.ErrUnauthorized},
		{name: "keyring failure", user: models.User{Login: "alice", Password: "pw"}, saveErr: errors.New("dbus unavailable")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, serverAdapter, tokenStore := newTestClientAuthService(t, ctrl)

			if tt.user.Password != "" {
				serverAdapter.EXPECT().Login(gomock.Any(), tt.user).Return("jwt-token", tt.loginErr)
				if tt.loginErr == nil {
					tokenStore.EXPECT().Save("jwt-token").Return(tt.saveErr)
				}
			}

			err := svc.Login(context.Background(), tt.user)
			switch {
			case tt.wantErr != nil:
				assert.ErrorIs(t, err, tt.wantErr)
			case tt.saveErr != nil:
				assert.ErrorIs(t, err, tt.saveErr)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientAuthService_LogoutAndRestore(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, serverAdapter, tokenStore := newTestClientAuthService(t, ctrl)
	ctx := context.Background()

	gomock.InOrder(
		tokenStore.EXPECT().Load().Return("jwt-token", nil),
		serverAdapter.EXPECT().SetToken("jwt-token"),
		serverAdapter.EXPECT().SetToken(""),
		tokenStore.EXPECT().Delete().Return(nil),
		tokenStore.EXPECT().Load().Return("", session.ErrNotLoggedIn),
	)

	require.NoError(t, svc.Restore(ctx))
	require.NoError(t, svc.Logout(ctx))
	assert.ErrorIs(t, svc.Restore(ctx), session.ErrNotLoggedIn)
}
