// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// Envelope is the self-contained encrypted form of one plaintext payload:
//
//	hex(salt) ‖ hex(iv) ‖ base64(ciphertext)
//
// The server treats it as an opaque string.
type Envelope string

// String implements [fmt.Stringer].
func (e Envelope) String() string {
	return string(e)
}

// Record is the plaintext unit of the vault. It only ever exists on the
// client; the server sees it sealed inside an [Envelope].
//
// Title, Username and Secret are required. JSON names match the layout used by
// earlier backups, so "password" carries Secret.
type Record struct {
	// Title is the human-readable name of the credential (e.g. "Bank").
	Title string `json:"title"`

	// Username is the account name the credential belongs to.
	Username string `json:"username"`

	// Secret is the password or other secret value.
	Secret string `json:"password"`

	// URL is the optional address of the service.
	URL string `json:"url,omitempty"`

	// Notes is optional free text.
	Notes string `json:"notes,omitempty"`

	// Tags are classification labels. They are stored unencrypted next to the
	// envelope for server-side filtering and are embedded into backups.
	Tags []string `json:"tags,omitempty"`
}

// Matches reports whether term occurs in the record's title or username,
// ignoring case. An empty term matches every record.
func (r Record) Matches(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(r.Title), term) ||
		strings.Contains(strings.ToLower(r.Username), term)
}

// HasTag reports whether the record carries tag.
func (r Record) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
