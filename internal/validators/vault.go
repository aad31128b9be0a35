// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/models"
	"github.com/hengadev/errsx"
)

// Field names used as keys of validation errors. FieldSecret matches the
// record's JSON key; the account password gets its own key so the two never
// collide in one error map or switch.
const (
	FieldTitle           = "title"
	FieldUsername        = "username"
	FieldSecret          = "password"
	FieldTags            = "tags"
	FieldEnvelope        = "envelope"
	FieldLogin           = "login"
	FieldAccountPassword = "account_password"
)

const (
	// MaxTags bounds the number of tags on one item.
	MaxTags = 32
	// MaxTagLength bounds the length of a single tag in bytes.
	MaxTagLength = 64
	// MinAccountPasswordLength is the shortest accepted account password.
	MinAccountPasswordLength = 8
)

type vaultValidator struct{}

// NewVaultValidator returns a [Validator] for records, store requests and
// user credentials.
func NewVaultValidator() Validator {
	return &vaultValidator{}
}

func (v *vaultValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Record:
		return validateRecord(value, fields...)
	case *models.Record:
		return validateRecord(*value, fields...)

	case models.StoreItemRequest:
		return validateStoreRequest(value)
	case *models.StoreItemRequest:
		return validateStoreRequest(*value)

	case models.User:
		return validateUser(value)
	case *models.User:
		return validateUser(*value)

	default:
		return ErrUnsupportedType
	}
}

// ValidateRecord checks that title, username and secret are non-empty and
// that tags are well formed.
func ValidateRecord(record models.Record) error {
	return validateRecord(record)
}

func validateRecord(record models.Record, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldUsername, FieldSecret, FieldTags}
	}

	var errs errsx.Map
	for _, field := range fields {
		switch field {
		case FieldTitle:
			if strings.TrimSpace(record.Title) == "" {
				errs.Set(FieldTitle, "title is required")
			}
		case FieldUsername:
			if strings.TrimSpace(record.Username) == "" {
				errs.Set(FieldUsername, "username is required")
			}
		case FieldSecret:
			if record.Secret == "" {
				errs.Set(FieldSecret, "password is required")
			}
		case FieldTags:
			if err := checkTags(record.Tags); err != nil {
				errs.Set(FieldTags, err)
			}
		default:
			return fmt.Errorf("%w: %s", ErrUnknownField, field)
		}
	}

	if errs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidRecord, errs.AsError())
}

func validateStoreRequest(req models.StoreItemRequest) error {
	var errs errsx.Map
	if req.Envelope == "" {
		errs.Set(FieldEnvelope, "envelope is required")
	}
	if err := checkTags(req.Tags); err != nil {
		errs.Set(FieldTags, err)
	}

	if errs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidItem, errs.AsError())
}

func validateUser(user models.User) error {
	var errs errsx.Map
	if strings.TrimSpace(user.Login) == "" {
		errs.Set(FieldLogin, "login is required")
	}
	if len(user.Password) < MinAccountPasswordLength {
		errs.Set(FieldAccountPassword, fmt.Sprintf("password must be at least %d characters", MinAccountPasswordLength))
	}

	if errs.IsEmpty() {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidUser, errs.AsError())
}

func checkTags(tags []string) error {
	if len(tags) > MaxTags {
		return fmt.Errorf("at most %d tags allowed, got %d", MaxTags, len(tags))
	}
	for i, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return fmt.Errorf("tag %d is empty", i)
		}
		if len(tag) > MaxTagLength {
			return fmt.Errorf("tag %q exceeds %d bytes", tag, MaxTagLength)
		}
	}
	return nil
}
