// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"strings"

	"github.com/MKhiriev/secure-vault/models"
	"github.com/spf13/cobra"
)

func (a *App) newRegisterCommand() *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a server account and log in",
		Long: `Create an account on the vault server. The account password protects
the server session only; it is independent of the master password that
encrypts your records.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.readAccount(login, true)
			if err != nil {
				return err
			}
			if err = a.services.AuthService.Register(cmd.Context(), user); err != nil {
				return err
			}
			a.printf("Registered and logged in as %s\n", user.Login)
			return nil
		},
	}
	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	return cmd
}

func (a *App) newLoginCommand() *cobra.Command {
	var login string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in to the vault server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := a.readAccount(login, false)
			if err != nil {
				return err
			}
			if err = a.services.AuthService.Login(cmd.Context(), user); err != nil {
				return err
			}
			a.printf("Logged in as %s\n", user.Login)
			return nil
		},
	}
	cmd.Flags().StringVarP(&login, "login", "l", "", "account login")
	return cmd
}

func (a *App) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.services.AuthService.Logout(cmd.Context()); err != nil {
				return err
			}
			a.printf("Logged out\n")
			return nil
		},
	}
}

// readAccount asks for whatever part of the credentials was not given as a
// flag. A new account password is asked for twice.
func (a *App) readAccount(login string, confirm bool) (models.User, error) {
	var err error
	if login == "" {
		if login, err = a.prompter.Line("Login: "); err != nil {
			return models.User{}, err
		}
	}

	var password string
	if confirm {
		password, err = a.prompter.NewPassword("Account password: ")
	} else {
		password, err = a.prompter.Password("Account password: ")
	}
	if err != nil {
		return models.User{}, err
	}

	return models.User{Login: strings.TrimSpace(login), Password: password}, nil
}
