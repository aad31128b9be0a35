// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the vault API over HTTP and the gRPC health endpoint
// side by side, and stops both on SIGINT/SIGTERM within the configured
// shutdown timeout.
package server
