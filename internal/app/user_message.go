// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"context"
	"errors"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/rekey"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/internal/validators"
)

// Client-side messages. Every decrypt-side failure maps to
// UserMsgCheckPassword, so a wrong password and a damaged envelope read the
// same.
const (
	UserMsgCheckPassword        = "Could not decrypt the data. Check your master password and try again."
	UserMsgEmptyMasterPassword  = "The master password must not be empty."
	UserMsgRandomSource         = "The system random source failed. Nothing was encrypted."
	UserMsgInvalidRecord        = "The record is incomplete: title, username and password are required."
	UserMsgPartialImport        = "Some items could not be imported. See the report above."
	UserMsgEmptyVault           = "The vault is empty. There is nothing to export."
	UserMsgNotLoggedIn          = "You are not logged in. Run the login command first."
	UserMsgSessionExpired       = "Your session is invalid or has expired. Log in again."
	UserMsgAccessDenied         = "This item belongs to another account."
	UserMsgItemNotFound         = "The item was not found."
	UserMsgLoginTaken           = "This login is already taken."
	UserMsgBadRequest           = "The server rejected the request as invalid."
	UserMsgServerUnavailable    = "The server is unreachable. Check the server URL and your connection."
	UserMsgServerError          = "The server failed to process the request. Try again later."
	UserMsgPasswordMismatch     = "The passwords do not match."
	UserMsgInvalidPasswordRules = "Generated passwords must be 8 to 64 characters long and use at least one character class."
	UserMsgCancelled            = "Operation cancelled."
)

var userMessages = []struct {
	err error
	msg string
}{
	{crypto.ErrDecryptionFailed, UserMsgCheckPassword},
	{crypto.ErrMalformedEnvelope, UserMsgCheckPassword},
	{crypto.ErrEmptyMasterPassword, UserMsgEmptyMasterPassword},
	{crypto.ErrRandomSource, UserMsgRandomSource},
	{validators.ErrInvalidRecord, UserMsgInvalidRecord},
	{rekey.ErrPartialImportFailure, UserMsgPartialImport},
	{rekey.ErrEmptyVault, UserMsgEmptyVault},
	{session.ErrNotLoggedIn, UserMsgNotLoggedIn},
	{session.ErrPasswordMismatch, UserMsgPasswordMismatch},
	{adapter.ErrUnauthorized, UserMsgSessionExpired},
	{adapter.ErrForbidden, UserMsgAccessDenied},
	{adapter.ErrNotFound, UserMsgItemNotFound},
	{adapter.ErrConflict, UserMsgLoginTaken},
	{adapter.ErrBadRequest, UserMsgBadRequest},
	{adapter.ErrServerUnavailable, UserMsgServerUnavailable},
	{adapter.ErrInternalServerError, UserMsgServerError},
	{utils.ErrInvalidPasswordLength, UserMsgInvalidPasswordRules},
	{utils.ErrNoCharacterClasses, UserMsgInvalidPasswordRules},
	{context.Canceled, UserMsgCancelled},
}

// UserMessage returns the text shown to the user for err. Known failures get
// fixed wording; anything else falls back to the error text. It returns ""
// for a nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.msg
		}
	}
	return err.Error()
}
