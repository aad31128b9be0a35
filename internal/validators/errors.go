// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// ErrInvalidRecord wraps an errsx.Map describing every invalid field.
	ErrInvalidRecord = errors.New("invalid vault record")

	ErrInvalidItem = errors.New("invalid vault item")
	ErrInvalidUser = errors.New("invalid user credentials")
)
