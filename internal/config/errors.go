// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors wrapping an errsx.Map of the offending fields.
var (
	// ErrInvalidServerConfigs indicates that the merged server configuration
	// is incomplete (for example, a missing token sign key).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidClientConfigs indicates an unusable client configuration
	// (for example, an empty server URL).
	ErrInvalidClientConfigs = errors.New("invalid client configuration")
)
