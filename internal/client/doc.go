// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the vault command-line client.
//
// [App] builds the cobra command tree. Configuration is resolved after flag
// parsing, then the client services, session token store and terminal UI are
// wired. Every command that touches plaintext asks for the master password;
// it is never stored.
package client
