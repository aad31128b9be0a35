// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/secure-vault/models"
)

const (
	maskedSecret     = "••••••••"
	detailTimeLayout = time.DateTime
)

type detailModel struct {
	item   models.DecryptedItem
	reveal bool
	status string
}

func (m detailModel) View() string {
	record := m.item.Record

	secret := maskedSecret
	if m.reveal {
		secret = record.Secret
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Username: %s\n", record.Username)
	fmt.Fprintf(&b, "Password: %s\n", secret)
	fmt.Fprintf(&b, "URL:      %s\n", valueOrDash(record.URL))
	fmt.Fprintf(&b, "Tags:     %s\n", valueOrDash(strings.Join(record.Tags, ", ")))
	fmt.Fprintf(&b, "Notes:    %s\n", valueOrDash(record.Notes))
	b.WriteString("\n")
	fmt.Fprintf(&b, "Created:  %s\n", formatTime(m.item.CreatedAt))
	fmt.Fprintf(&b, "Updated:  %s\n", formatTime(m.item.UpdatedAt))

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage(record.Title, strings.TrimRight(b.String(), "\n"), footer(keys.reveal, keys.copy, keys.copyUser, keys.back))
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(detailTimeLayout)
}
