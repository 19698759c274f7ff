// Package commands defines the CLI command structure and flag bindings.
//
// This package contains cobra command definitions that handle argument parsing,
// flag binding, and validation. Command execution is delegated to handler
// functions in the handlers package.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/aitown/townsetup/cmd/townsetup/handlers"
	"github.com/aitown/townsetup/internal/config"
)

// Root returns the root command for the townsetup CLI.
//
// Running the root command without a subcommand starts the setup wizard,
// the same as "townsetup setup".
func Root() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "townsetup",
		Short: "Interactively configure an AI Town project",
		Long:  setupLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	bindSetupFlags(cmd, &opts)

	cmd.AddCommand(Setup())
	cmd.AddCommand(Version())
	cmd.AddCommand(Completion())

	return cmd
}
