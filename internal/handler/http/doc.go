// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the REST transport of the vault server.
//
// It wires the chi router, the request middleware (trace id, access
// logging, bearer authentication, compression) and the JSON handlers that
// delegate to the service layer. Envelopes pass through untouched; the
// server never sees a master password.
package http
