// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the server and the client:
// typed context keys, JWT issuing and parsing, identifier generation, JSON
// responses, the password generator and clipboard access.
package utils
