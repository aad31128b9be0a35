// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrLoginAlreadyExists is returned when registering a login that is
	// already taken.
	ErrLoginAlreadyExists = errors.New("login already exists")

	// ErrUserNotFound is returned when no user matches the requested login.
	ErrUserNotFound = errors.New("no user was found")

	// ErrItemNotFound is returned when a vault item does not exist or, for
	// owner-scoped writes, does not belong to the caller.
	ErrItemNotFound = errors.New("vault item was not found")

	// ErrItemAlreadyExists is returned when an item id collides.
	ErrItemAlreadyExists = errors.New("vault item already exists")

	// ErrUnsupportedDSN is returned for a DSN whose scheme names no known
	// backend.
	ErrUnsupportedDSN = errors.New("unsupported storage DSN")
)

// Low-level database operation errors. These wrap the driver error when a
// SQL-level operation fails before any domain logic can be applied.
var (
	ErrBuildingSQLQuery      = errors.New("error building sql query")
	ErrExecutingQuery        = errors.New("error executing sql query")
	ErrBeginningTransaction  = errors.New("failed to begin transaction")
	ErrCommitingTransaction  = errors.New("failed to commit transaction")
	ErrExecutingStatement    = errors.New("failed to execute statement")
	ErrScanningRow           = errors.New("failed to scan row")
	ErrScanningRows          = errors.New("failed to scan rows")
	ErrEncodingBoltRecord    = errors.New("failed to encode bolt record")
	ErrDecodingBoltRecord    = errors.New("failed to decode bolt record")
	ErrOpeningBoltDatabase   = errors.New("failed to open bolt database")
	ErrInitializingBoltStore = errors.New("failed to initialize bolt buckets")
)
