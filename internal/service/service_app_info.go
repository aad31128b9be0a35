// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/models"
)

type appInfoService struct {
	version models.VersionResponse

	logger *logger.Logger
}

// NewAppInfoService reports buildInfo. A configured version overrides the
// linker-injected one.
func NewAppInfoService(buildInfo models.AppBuildInfo, configuredVersion string, logger *logger.Logger) AppInfoService {
	version := buildInfo.Response()
	if configuredVersion != "" {
		version.Version = configuredVersion
	}

	return &appInfoService{
		version: version,
		logger:  logger,
	}
}

func (s *appInfoService) GetAppVersion(ctx context.Context) models.VersionResponse {
	return s.version
}
