// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

// VaultItemServiceWrapper decorates a [VaultItemService], e.g. with request
// validation.
type VaultItemServiceWrapper interface {
	Wrap(VaultItemService) VaultItemService
}

// VaultItemValidationService rejects malformed requests before they reach
// the wrapped service. Envelopes are only shape-checked, never decrypted.
type VaultItemValidationService struct {
	inner     VaultItemService
	validator validators.Validator
}

func NewVaultItemValidationService() VaultItemServiceWrapper {
	return &VaultItemValidationService{
		validator: validators.NewVaultValidator(),
	}
}

func (v *VaultItemValidationService) Wrap(inner VaultItemService) VaultItemService {
	v.inner = inner
	return v
}

func (v *VaultItemValidationService) Create(ctx context.Context, ownerID int64, req models.StoreItemRequest) (models.VaultItem, error) {
	if err := v.validateRequest(ctx, ownerID, req); err != nil {
		return models.VaultItem{}, err
	}
	return v.inner.Create(ctx, ownerID, req)
}

func (v *VaultItemValidationService) Get(ctx context.Context, ownerID int64, id string) (models.VaultItem, error) {
	if err := validateIdentity(ownerID, id); err != nil {
		return models.VaultItem{}, err
	}
	return v.inner.Get(ctx, ownerID, id)
}

func (v *VaultItemValidationService) List(ctx context.Context, ownerID int64, tag string) ([]models.VaultItem, error) {
	if ownerID == 0 {
		return nil, ErrNoUserID
	}
	return v.inner.List(ctx, ownerID, tag)
}

func (v *VaultItemValidationService) Replace(ctx context.Context, ownerID int64, id string, req models.StoreItemRequest) (models.VaultItem, error) {
	if err := validateIdentity(ownerID, id); err != nil {
		return models.VaultItem{}, err
	}
	if err := v.validateRequest(ctx, ownerID, req); err != nil {
		return models.VaultItem{}, err
	}
	return v.inner.Replace(ctx, ownerID, id, req)
}

func (v *VaultItemValidationService) Delete(ctx context.Context, ownerID int64, id string) error {
	if err := validateIdentity(ownerID, id); err != nil {
		return err
	}
	return v.inner.Delete(ctx, ownerID, id)
}

func (v *VaultItemValidationService) ListTags(ctx context.Context, ownerID int64) ([]string, error) {
	if ownerID == 0 {
		return nil, ErrNoUserID
	}
	return v.inner.ListTags(ctx, ownerID)
}

func (v *VaultItemValidationService) validateRequest(ctx context.Context, ownerID int64, req models.StoreItemRequest) error {
	if ownerID == 0 {
		return ErrNoUserID
	}
	if err := v.validator.Validate(ctx, req); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := crypto.CheckEnvelopeShape(req.Envelope); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

func validateIdentity(ownerID int64, id string) error {
	if ownerID == 0 {
		return ErrNoUserID
	}
	if strings.TrimSpace(id) == "" {
		return fmt.Errorf("%w: empty item id", ErrInvalidDataProvided)
	}
	return nil
}
