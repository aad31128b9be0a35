// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/secure-vault/internal/adapter"
	"github.com/MKhiriev/secure-vault/internal/config"
	"github.com/MKhiriev/secure-vault/internal/logger"
	"github.com/MKhiriev/secure-vault/internal/service"
	"github.com/MKhiriev/secure-vault/internal/session"
	"github.com/MKhiriev/secure-vault/internal/tui"
	"github.com/MKhiriev/secure-vault/internal/utils"
	"github.com/MKhiriev/secure-vault/models"
	"github.com/spf13/cobra"
)

const clientRole = "secure-vault-client"

// App holds the client dependencies shared by all commands.
type App struct {
	buildInfo models.AppBuildInfo

	// flags collects command-line overrides for the client configuration.
	flags   config.StructuredConfig
	logPath string

	services *service.ClientServices
	server   adapter.ServerAdapter

	// prompter reads account credentials and confirmations; master answers
	// master-password prompts and may be fed from the environment.
	prompter session.Prompter
	master   session.Prompter

	clipboard utils.Clipboard
	generator PasswordGenerator
	view      VaultView

	out    io.Writer
	logger *logger.Logger
}

// NewApp returns an App that writes to stdout and prompts on the terminal.
// Services are created on the first command run, once flags are parsed.
func NewApp(buildInfo models.AppBuildInfo) *App {
	prompter := session.NewStdPrompter()

	return &App{
		buildInfo: buildInfo,
		prompter:  prompter,
		master:    session.WithEnvPassword(prompter),
		clipboard: utils.NewSystemClipboard(),
		generator: utils.NewPasswordGenerator(),
		out:       os.Stdout,
		logger:    logger.Nop(),
	}
}

// Execute runs the command named by args.
func (a *App) Execute(ctx context.Context, args []string) error {
	root := a.NewRootCommand()
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

func (a *App) NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "secure-vault",
		Short: "Client for the secure-vault credential store",
		Long: `secure-vault keeps credentials on a remote server as envelopes encrypted
on this machine with a key derived from your master password. The server
never sees the master password or any plaintext.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
	}
	root.SetOut(a.out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.flags.ConfigFilePath, "config", "c", "", "path to a JSON or YAML config file")
	flags.StringVarP(&a.flags.Adapter.ServerURL, "server", "s", "", "vault server URL (default "+config.DefaultServerURL+")")
	flags.DurationVar(&a.flags.Adapter.RequestTimeout, "timeout", 0, "timeout for one server request")
	flags.IntVar(&a.flags.Workers.ImportConcurrency, "workers", 0, "items imported in parallel (default: one per CPU)")
	flags.StringVar(&a.flags.Session.KeyringService, "keyring-service", "", "OS keyring service name for the session token")
	flags.StringVar(&a.logPath, "log-file", "", "client log file (default: next to the executable)")

	root.AddCommand(
		a.newRegisterCommand(),
		a.newLoginCommand(),
		a.newLogoutCommand(),
		a.newAddCommand(),
		a.newListCommand(),
		a.newShowCommand(),
		a.newEditCommand(),
		a.newDeleteCommand(),
		a.newTagsCommand(),
		a.newExportCommand(),
		a.newImportCommand(),
		a.newGenerateCommand(),
		a.newVersionCommand(),
		a.newTUICommand(),
	)

	return root
}

// setup wires the services from the merged configuration. It is a no-op when
// services are already present.
func (a *App) setup() error {
	if a.services != nil {
		return nil
	}

	cfg, err := config.GetClientConfig(&a.flags)
	if err != nil {
		return fmt.Errorf("error getting client config: %w", err)
	}

	a.logger = logger.NewClientLogger(clientRole, a.logPath)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, a.logger)
	if err != nil {
		return fmt.Errorf("error creating server adapter: %w", err)
	}

	tokenStore := session.NewKeyringTokenStore(cfg.Session.KeyringService)

	a.server = serverAdapter
	a.services = service.NewClientServices(serverAdapter, tokenStore, cfg, a.logger)
	a.view = tui.New(a.services.VaultService, a.clipboard, a.logger)

	a.logger.Debug().Str("server", cfg.Adapter.ServerURL).Msg("client initialized")
	return nil
}

// requireSession loads the stored session token into the adapter.
func (a *App) requireSession(cmd *cobra.Command, _ []string) error {
	if err := a.setup(); err != nil {
		return err
	}
	return a.services.AuthService.Restore(cmd.Context())
}

func (a *App) masterPassword() (string, error) {
	return a.master.Password("Master password: ")
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}
