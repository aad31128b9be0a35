// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package rekey

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/secure-vault/internal/crypto"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/workers"
	"github.com/MKhiriev/secure-vault/models"
)

type policy struct {
	cipher crypto.Cipher
	runner workers.Runner
	logger *logger.Logger
}

// NewPolicy returns the default [Policy]. runner bounds import parallelism.
func NewPolicy(cipher crypto.Cipher, runner workers.Runner, logger *logger.Logger) Policy {
	return &policy{
		cipher: cipher,
		runner: runner,
		logger: logger,
	}
}

func (p *policy) Edit(envelope models.Envelope, password string, mutate func(*models.Record) error) (models.Envelope, error) {
	if mutate == nil {
		return "", ErrNilMutation
	}

	record, err := p.cipher.Decrypt(envelope, password)
	if err != nil {
		return "", err
	}

	if err = mutate(&record); err != nil {
		return "", fmt.Errorf("apply edit: %w", err)
	}

	return p.cipher.Encrypt(record, password)
}

func (p *policy) Export(ctx context.Context, items []models.VaultItem, password string) (models.Envelope, error) {
	if password == "" {
		return "", crypto.ErrEmptyMasterPassword
	}
	if len(items) == 0 {
		return "", ErrEmptyVault
	}

	records := make([]models.Record, 0, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		record, err := p.cipher.Decrypt(item.Envelope, password)
		if err != nil {
			p.logger.Err(err).Str("func", "policy.Export").Str("item_id", item.ID).Msg("item could not be decrypted, export aborted")
			return "", err
		}
		record.Tags = slices.Clone(item.Tags)
		records = append(records, record)
	}

	backup, err := p.cipher.Seal(records, password)
	if err != nil {
		return "", err
	}

	p.logger.Debug().Str("func", "policy.Export").Int("items", len(records)).Int("envelope_len", len(backup)).Msg("vault exported")
	return backup, nil
}

func (p *policy) Import(ctx context.Context, backup models.Envelope, backupPassword, currentPassword string, sink ItemSink) (models.ImportReport, error) {
	if sink == nil {
		return models.ImportReport{}, ErrNilSink
	}
	if backupPassword == "" || currentPassword == "" {
		return models.ImportReport{}, crypto.ErrEmptyMasterPassword
	}

	var records []models.Record
	if err := p.cipher.Open(backup, backupPassword, &records); err != nil {
		return models.ImportReport{}, err
	}

	errs := p.runner.Run(ctx, len(records), func(ctx context.Context, i int) error {
		envelope, err := p.cipher.Encrypt(records[i], currentPassword)
		if err != nil {
			return err
		}
		return sink.Store(ctx, envelope, records[i].Tags)
	})

	report := models.ImportReport{Total: len(records)}
	for i, err := range errs {
		if err == nil {
			report.Succeeded++
			continue
		}
		report.Failed++
		report.Failures = append(report.Failures, models.ItemFailure{
			Index: i,
			Title: records[i].Title,
			Err:   err,
		})
	}

	event := p.logger.Info()
	if report.Failed > 0 {
		event = p.logger.Warn()
	}
	event.Str("func", "policy.Import").
		Int("total", report.Total).
		Int("succeeded", report.Succeeded).
		Int("failed", report.Failed).
		Msg("backup imported")

	if report.Failed > 0 {
		return report, fmt.Errorf("%w: %d of %d", ErrPartialImportFailure, report.Failed, report.Total)
	}
	return report, nil
}

// FailureCauses joins the per-item errors of report, each prefixed with its
// one-based position and title.
func FailureCauses(report models.ImportReport) error {
	errs := make([]error, 0, len(report.Failures))
	for _, f := range report.Failures {
		errs = append(errs, fmt.Errorf("item %d (%s): %w", f.Index+1, f.Title, f.Err))
	}
	return errors.Join(errs...)
}
