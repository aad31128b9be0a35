// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rekey

import "errors"

var (
	// ErrPartialImportFailure is returned together with a report when at
	// least one record of a backup could not be imported.
	ErrPartialImportFailure = errors.New("some backup items failed to import")

	// ErrEmptyVault is returned by Export when there is nothing to back up.
	ErrEmptyVault = errors.New("vault is empty")

	ErrNilMutation = errors.New("edit requires a mutation")
	ErrNilSink     = errors.New("import requires an item sink")
)
