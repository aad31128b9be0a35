// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// facilities for the server and the client.
//
// Configuration is assembled from several sources. For every field the first
// source that sets a non-zero value wins:
//  1. Command-line flags (server) or cobra flags (client)
//  2. Environment variables, after an optional .env file has been loaded
//  3. JSON or YAML config file
//  4. Built-in defaults
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the client.
package config
