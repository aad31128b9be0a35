// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ImportReport summarises a bulk import. Every backup record is accounted for
// exactly once: Total == Succeeded + Failed.
type ImportReport struct {
	Total     int
	Succeeded int
	Failed    int

	// Failures lists the records that could not be re-encrypted or stored,
	// ordered by their position in the backup.
	Failures []ItemFailure
}

// ItemFailure describes one record that failed during import.
type ItemFailure struct {
	// Index is the zero-based position of the record in the backup.
	Index int

	// Title is the record title, for user-facing reporting.
	Title string

	Err error
}
