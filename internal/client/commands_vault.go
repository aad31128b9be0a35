// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/spf13/cobra"
)

const hiddenSecret = "********"

// recordFlags are the record fields settable from the command line.
type recordFlags struct {
	title    string
	username string
	url      string
	notes    string
	tags     []string

	generate bool
	length   int
	copy     bool
}

func (f *recordFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVarP(&f.title, "title", "t", "", "record title")
	flags.StringVarP(&f.username, "username", "u", "", "record username")
	flags.StringVar(&f.url, "url", "", "record URL")
	flags.StringVar(&f.notes, "notes", "", "free-form notes")
	flags.StringSliceVar(&f.tags, "tags", nil, "comma-separated tags")
	flags.BoolVarP(&f.generate, "generate", "g", false, "generate a random password")
	flags.IntVar(&f.length, "length", utils.DefaultGeneratedLength, "generated password length")
	flags.BoolVar(&f.copy, "copy", false, "copy the generated password to the clipboard")
}

func (a *App) newAddCommand() *cobra.Command {
	var f recordFlags

	cmd := &cobra.Command{
		Use:     "add",
		Short:   "Encrypt a new record and store it on the server",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record := models.Record{
				Title:    f.title,
				Username: f.username,
				URL:      f.url,
				Notes:    f.notes,
				Tags:     f.tags,
			}

			var err error
			if record.Title == "" {
				if record.Title, err = a.prompter.Line("Title: "); err != nil {
					return err
				}
			}
			if record.Username == "" {
				if record.Username, err = a.prompter.Line("Username: "); err != nil {
					return err
				}
			}
			if record.Secret, err = a.readSecret(f); err != nil {
				return err
			}

			password, err := a.masterPassword()
			if err != nil {
				return err
			}

			item, err := a.services.VaultService.Add(cmd.Context(), record, password)
			if err != nil {
				return err
			}
			a.printf("Added %q (%s)\n", record.Title, item.ID)
			return a.copyGenerated(f, record.Secret)
		},
	}
	f.register(cmd)
	return cmd
}

func (a *App) newListCommand() *cobra.Command {
	var filter models.ItemFilter

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Decrypt and list records",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			password, err := a.masterPassword()
			if err != nil {
				return err
			}

			items, err := a.services.VaultService.List(cmd.Context(), filter, password)
			if err != nil {
				return err
			}
			if len(items) == 0 {
				a.printf("No records\n")
				return nil
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTITLE\tUSERNAME\tTAGS")
			for _, item := range items {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", item.ID, item.Record.Title, item.Record.Username, strings.Join(item.Record.Tags, ","))
			}
			return w.Flush()
		},
	}
	cmd.Flags().StringVar(&filter.Tag, "tag", "", "only records carrying this tag")
	cmd.Flags().StringVar(&filter.Search, "search", "", "case-insensitive match on title or username")
	return cmd
}

func (a *App) newShowCommand() *cobra.Command {
	var reveal, copySecret bool

	cmd := &cobra.Command{
		Use:     "show <id>",
		Short:   "Decrypt and print one record",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			password, err := a.masterPassword()
			if err != nil {
				return err
			}

			item, err := a.services.VaultService.Show(cmd.Context(), args[0], password)
			if err != nil {
				return err
			}

			record := item.Record
			secret := hiddenSecret
			if reveal {
				secret = record.Secret
			}

			w := tabwriter.NewWriter(a.out, 0, 0, 1, ' ', 0)
			fmt.Fprintf(w, "ID:\t%s\n", item.ID)
			fmt.Fprintf(w, "Title:\t%s\n", record.Title)
			fmt.Fprintf(w, "Username:\t%s\n", record.Username)
			fmt.Fprintf(w, "Password:\t%s\n", secret)
			fmt.Fprintf(w, "URL:\t%s\n", record.URL)
			fmt.Fprintf(w, "Notes:\t%s\n", record.Notes)
			fmt.Fprintf(w, "Tags:\t%s\n", strings.Join(record.Tags, ", "))
			if err = w.Flush(); err != nil {
				return err
			}

			if copySecret {
				if err = a.clipboard.Copy(record.Secret); err != nil {
					return err
				}
				a.printf("Password copied to clipboard\n")
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&reveal, "reveal", "r", false, "print the password in clear text")
	cmd.Flags().BoolVar(&copySecret, "copy", false, "copy the password to the clipboard")
	return cmd
}

func (a *App) newEditCommand() *cobra.Command {
	var (
		f         recordFlags
		newSecret bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Change fields of a record and re-encrypt it",
		Long: `Decrypt the record, apply the given flags and store it again under a fresh
salt and IV. Fields without a flag keep their value.`,
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			changed := cmd.Flags().Changed

			var secret string
			if newSecret || f.generate {
				var err error
				if secret, err = a.readSecret(f); err != nil {
					return err
				}
			}

			password, err := a.masterPassword()
			if err != nil {
				return err
			}

			mutate := func(r *models.Record) error {
				if changed("title") {
					r.Title = f.title
				}
				if changed("username") {
					r.Username = f.username
				}
				if changed("url") {
					r.URL = f.url
				}
				if changed("notes") {
					r.Notes = f.notes
				}
				if changed("tags") {
					r.Tags = f.tags
				}
				if secret != "" {
					r.Secret = secret
				}
				return nil
			}

			item, err := a.services.VaultService.Edit(cmd.Context(), args[0], password, mutate)
			if err != nil {
				return err
			}
			a.printf("Updated %q (%s)\n", item.Record.Title, item.ID)
			return a.copyGenerated(f, secret)
		},
	}
	f.register(cmd)
	cmd.Flags().BoolVarP(&newSecret, "password", "p", false, "prompt for a new password")
	return cmd
}

func (a *App) newDeleteCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "delete <id>",
		Aliases: []string{"rm"},
		Short:   "Delete a record from the server",
		Args:    cobra.ExactArgs(1),
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				answer, err := a.prompter.Line(fmt.Sprintf("Delete %s? [y/N] ", args[0]))
				if err != nil {
					return err
				}
				if !strings.EqualFold(strings.TrimSpace(answer), "y") {
					a.printf("Cancelled\n")
					return nil
				}
			}

			if err := a.services.VaultService.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.printf("Deleted %s\n", args[0])
			return nil
		},
	}
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "do not ask for confirmation")
	return cmd
}

func (a *App) newTagsCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "tags",
		Short:   "List the distinct tags of your records",
		Args:    cobra.NoArgs,
		PreRunE: a.requireSession,
		RunE: func(cmd *cobra.Command, _ []string) error {
			tags, err := a.services.VaultService.Tags(cmd.Context())
			if err != nil {
				return err
			}
			for _, tag := range tags {
				a.printf("%s\n", tag)
			}
			return nil
		},
	}
}

// readSecret generates a password when asked to, otherwise prompts for one.
func (a *App) readSecret(f recordFlags) (string, error) {
	if !f.generate {
		return a.prompter.Password("Password: ")
	}

	opts := utils.DefaultPasswordOptions()
	opts.Length = f.length
	return a.generator.Generate(opts)
}

func (a *App) copyGenerated(f recordFlags, secret string) error {
	if !f.generate || !f.copy {
		return nil
	}
	if err := a.clipboard.Copy(secret); err != nil {
		return err
	}
	a.printf("Generated password copied to clipboard\n")
	return nil
}
