// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/rekey"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "decryption failed", err: crypto.ErrDecryptionFailed, want: UserMsgCheckPassword},
		{name: "wrapped decryption failed", err: fmt.Errorf("show item: %w", crypto.ErrDecryptionFailed), want: UserMsgCheckPassword},
		{name: "malformed envelope", err: crypto.ErrMalformedEnvelope, want: UserMsgCheckPassword},
		{name: "empty password", err: crypto.ErrEmptyMasterPassword, want: UserMsgEmptyMasterPassword},
		{name: "invalid record", err: fmt.Errorf("%w: title: required", validators.ErrInvalidRecord), want: UserMsgInvalidRecord},
		{name: "partial import", err: fmt.Errorf("%w: 1 of 5", rekey.ErrPartialImportFailure), want: UserMsgPartialImport},
		{name: "empty vault", err: rekey.ErrEmptyVault, want: UserMsgEmptyVault},
		{name: "not logged in", err: session.ErrNotLoggedIn, want: UserMsgNotLoggedIn},
		{name: "unauthorized", err: fmt.Errorf("%w: token is expired", adapter.ErrUnauthorized), want: UserMsgSessionExpired},
		{name: "forbidden", err: adapter.ErrForbidden, want: UserMsgAccessDenied},
		{name: "unreachable", err: adapter.ErrServerUnavailable, want: UserMsgServerUnavailable},
		{name: "cancelled", err: context.Canceled, want: UserMsgCancelled},
		{name: "unknown", err: errors.New("disk full"), want: "disk full"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, UserMessage(tt.err))
		})
	}
}

func TestUserMessage_DecryptFailuresAreIndistinguishable(t *testing.T) {
	assert.Equal(t, UserMessage(crypto.ErrDecryptionFailed), UserMessage(crypto.ErrMalformedEnvelope))
}
