// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators enforces the structural rules of vault inputs before
// they are encrypted, stored, or used to authenticate.
//
// Record validation sits at the serialization boundary: a record that fails
// here is never encrypted, and a decrypted payload that fails here is
// treated as undecryptable.
package validators

import "context"

// Validator defines a generic validation interface for arbitrary input values.
type Validator interface {
	// Validate validates the provided input and optionally restricts
	// validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
