// Package cli maps user actions onto the controller: login, logout, list,
// signup, unregister, plus a development fake-server.
package cli

import (
	"context"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"rollcall/internal/app"
	"rollcall/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	ConfigPath  string
	ServerURL   string
	StoragePath string
	Format      string // "text" | "json"
	Verbose     bool
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the rollcall CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:          "rollcall",
		Short:        "Client for the school activity sign-up service",
		Long:         "rollcall views activity availability and, for signed-in staff, registers and unregisters students.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			if !opts.Verbose {
				log.SetOutput(io.Discard)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "path to a yaml config file")
	cmd.PersistentFlags().StringVar(&opts.ServerURL, "server", "", "activity service base URL (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.StoragePath, "credentials", "", "path of the credential database (overrides config)")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewUnregisterCommand(opts))
	cmd.AddCommand(NewFakeServerCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// buildApp loads configuration, applies flag overrides, and wires the
// client.
func buildApp(ctx context.Context, opts *RootOptions) (*app.Application, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}
	if opts.ServerURL != "" {
		cfg.Server.BaseURL = opts.ServerURL
	}
	if opts.StoragePath != "" {
		cfg.Storage.Path = opts.StoragePath
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return app.NewApplication(ctx, cfg)
}

func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
