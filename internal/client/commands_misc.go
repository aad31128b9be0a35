// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"errors"

	"github.com/MKhiriev/secure-vault/internal/app"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/spf13/cobra"
)

func (a *App) newGenerateCommand() *cobra.Command {
	var (
		opts       = utils.DefaultPasswordOptions()
		noLower    bool
		noUpper    bool
		noDigits   bool
		noSymbols  bool
		copySecret bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a random password",
		Args:  cobra.NoArgs,
		// nothing to wire: generation is local
		PersistentPreRunE: func(*cobra.Command, []string) error { return nil },
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Lower = !noLower
			opts.Upper = !noUpper
			opts.Digits = !noDigits
			opts.Symbols = !noSymbols

			secret, err := a.generator.Generate(opts)
			if err != nil {
				return err
			}

			if copySecret {
				if err = a.clipboard.Copy(secret); err != nil {
					return err
				}
				a.printf("Password copied to clipboard\n")
				return nil
			}
			a.printf("%s\n", secret)
			return nil
		},
	}

	flags := cmd.Flags()
	flags.IntVarP(&opts.Length, "length", "n", utils.DefaultGeneratedLength, "password length (8-64)")
	flags.BoolVar(&noLower, "no-lower", false, "exclude lowercase letters")
	flags.BoolVar(&noUpper, "no-upper", false, "exclude uppercase letters")
	flags.BoolVar(&noDigits, "no-digits", false, "exclude digits")
	flags.BoolVar(&noSymbols, "no-symbols", false, "exclude symbols")
	flags.BoolVar(&copySecret, "copy", false, "copy to the clipboard instead of printing")
	return cmd
}

func (a *App) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the client and server versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a.printf("Client version: %s\n", a.buildInfo.BuildVersion())
			a.printf("Client build date: %s\n", a.buildInfo.BuildDate())
			a.printf("Client build commit: %s\n", a.buildInfo.BuildCommit())

			server, err := a.server.Version(cmd.Context())
			if err != nil {
				a.printf("Server version: unavailable (%s)\n", app.UserMessage(err))
				return nil
			}
			a.printf("Server version: %s\n", server.Version)
			return nil
		},
	}
}

func (a *App) newTUICommand() *cobra.Command {
	var filter models.ItemFilter

	cmd := &cobra.Command{
		Use:     "tui",
		Short:   "Browse the vault interactively",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			err := a.view.Run(cmd.Context(), filter)
			if errors.Is(err, tui.ErrUserQuit) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "only records carrying this tag")
	cmd.Flags().StringVar(&filter.Search, "search", "", "initial search term")
	return cmd
}
