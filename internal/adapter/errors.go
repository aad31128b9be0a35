// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("access denied")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")

	// ErrServerUnavailable is returned when no response was received at all.
	ErrServerUnavailable = errors.New("server unavailable")

	ErrInvalidServerURL = errors.New("invalid server url")
	ErrMissingToken     = errors.New("server response carries no session token")
)
