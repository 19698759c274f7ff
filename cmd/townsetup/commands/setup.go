package commands

import (
	"github.com/spf13/cobra"

	"github.com/aitown/townsetup/cmd/townsetup/handlers"
	"github.com/aitown/townsetup/internal/config"
)

const setupLong = `Interactively configure an AI Town project.

This command walks through the project setup step by step:

  - Install dependencies with the package manager (optional)
  - Choose an LLM provider (ollama, openai, together or custom)
    and enter its credentials
  - Enter a Replicate API token (optional)
  - Configure Clerk auth (optional)
  - Configure a self-hosted Convex backend (optional)

Provider credentials are stored in the Convex deployment environment
with "npx convex env set". Auth and self-hosting secrets are appended
to the local env file (.env.local by default); existing entries are kept.

Use --dry-run to see the commands and file changes without running them.`

// Setup returns the command that runs the interactive setup wizard.
//
// Flags:
//
//	--env-file, -e: Local env file to append secrets to (default ".env.local")
//	--package-manager: Package manager used to install dependencies (default "npm")
//	--plain: Use line prompts even on a terminal
//	--dry-run: Print commands and file changes without executing them
//	--verbose, -v: Enable debug logging
func Setup() *cobra.Command {
	opts := config.DefaultOptions()

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Run the interactive setup wizard",
		Long:  setupLong,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return handlers.Setup(cmd.Context(), opts)
		},
	}

	bindSetupFlags(cmd, &opts)

	return cmd
}

// bindSetupFlags registers the setup flags on cmd.
func bindSetupFlags(cmd *cobra.Command, opts *config.Options) {
	cmd.Flags().StringVarP(&opts.EnvFile, "env-file", "e", opts.EnvFile, "Local env file to append secrets to")
	cmd.Flags().StringVar(&opts.PackageManager, "package-manager", opts.PackageManager, "Package manager used to install dependencies")
	cmd.Flags().BoolVar(&opts.Plain, "plain", opts.Plain, "Use line prompts even on a terminal")
	cmd.Flags().BoolVar(&opts.DryRun, "dry-run", opts.DryRun, "Print commands and file changes without executing them")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", opts.Verbose, "Enable debug logging")
}
