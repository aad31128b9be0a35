// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/internal/validators"
	"github.com/MKhiriev/secure-vault/models"
)

type clientAuthService struct {
	adapter    adapter.ServerAdapter
	tokenStore session.TokenStore
	validator  validators.Validator

	logger *logger.Logger
}

func NewClientAuthService(serverAdapter adapter.ServerAdapter, tokenStore session.TokenStore, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		adapter:    serverAdapter,
		tokenStore: tokenStore,
		validator:  validators.NewVaultValidator(),
		logger:     logger,
	}
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) error {
	if err := s.validator.Validate(ctx, user); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	token, err := s.adapter.Register(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Register").Str("login", user.Login).Msg("registration failed")
		return fmt.Errorf("register: %w", err)
	}
	return s.save(token)
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) error {
	if user.Login == "" || user.Password == "" {
		return ErrInvalidDataProvided
	}

	token, err := s.adapter.Login(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Login").Str("login", user.Login).Msg("login failed")
		return fmt.Errorf("login: %w", err)
	}
	return s.save(token)
}

func (s *clientAuthService) Logout(ctx context.Context) error {
	s.adapter.SetToken("")
	return s.tokenStore.Delete()
}

func (s *clientAuthService) Restore(ctx context.Context) error {
	token, err := s.tokenStore.Load()
	if err != nil {
		return err
	}
	s.adapter.SetToken(token)
	return nil
}

func (s *clientAuthService) save(token string) error {
	if err := s.tokenStore.Save(token); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}
