// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/rekey"
	"github.com/spf13/cobra"
)

func (a *App) newExportCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the whole vault into one encrypted backup file",
		Long: `Decrypt every record and seal the collection into a single envelope under
the master password. The file is named secure-vault-backup-YYYY-MM-DD.txt.`,
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.masterPassword()
			if err != nil {
				return err
			}

			path, err := a.services.VaultService.Export(cmd.Context(), password, dir)
			if err != nil {
				return err
			}
			a.printf("Vault exported to %s\n", path)
			return nil
		},
	}
	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "directory for the backup file")
	return cmd
}

func (a *App) newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Re-encrypt the records of a backup under the current master password",
		Long: `Open a backup with the master password it was exported under and store each
record again, encrypted under the current master password. Records are
processed independently; a failing record does not stop the others.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			// The backup may be sealed under an older master password, so it is
			// always asked for interactively.
			backupPassword, err := a.prompter.Password("Backup master password: ")
			if err != nil {
				return err
			}
			currentPassword, err := a.masterPassword()
			if err != nil {
				return err
			}

			report, err := a.services.VaultService.Import(cmd.Context(), args[0], backupPassword, currentPassword)
			if err != nil && !errors.Is(err, rekey.ErrPartialImportFailure) {
				return err
			}

			a.printf("Imported %d of %d records\n", report.Succeeded, report.Total)
			for _, f := range report.Failures {
				a.printf("  failed #%d %q: %s\n", f.Index+1, f.Title, app.UserMessage(f.Err))
			}
			if err != nil {
				a.logger.Warn().Err(rekey.FailureCauses(report)).Int("failed", report.Failed).Msg("partial import")
			}
			return err
		},
	}
}
