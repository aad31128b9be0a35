// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrEmptyAuthorizationHeader is reported when a protected vault route is
	// called without a bearer token.
	ErrEmptyAuthorizationHeader = errors.New("missing bearer token in Authorization header")

	// ErrInvalidJSON wraps body decoding failures for credentials and vault
	// item payloads.
	ErrInvalidJSON = errors.New("request body is not valid JSON")
)
