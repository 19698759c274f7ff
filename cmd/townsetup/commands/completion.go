package commands

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// completionShells lists the supported shells in help order.
var completionShells = []string{"bash", "zsh", "fish", "powershell"}

// completionGenerators writes the completion script for a shell.
var completionGenerators = map[string]func(root *cobra.Command, w io.Writer) error{
	"bash":       func(root *cobra.Command, w io.Writer) error { return root.GenBashCompletionV2(w, true) },
	"zsh":        func(root *cobra.Command, w io.Writer) error { return root.GenZshCompletion(w) },
	"fish":       func(root *cobra.Command, w io.Writer) error { return root.GenFishCompletion(w, true) },
	"powershell": func(root *cobra.Command, w io.Writer) error { return root.GenPowerShellCompletionWithDesc(w) },
}

const completionLong = `Print a completion script for townsetup to stdout.

The installer is usually run once per checkout, so loading the script into
the current shell is often enough:

  bash:       source <(townsetup completion bash)
  zsh:        source <(townsetup completion zsh)
  fish:       townsetup completion fish | source
  powershell: townsetup completion powershell | Out-String | Invoke-Expression

To keep completions across sessions, redirect the output into your shell's
completion directory instead.`

// Completion returns the command that prints shell completion scripts.
func Completion() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 "Generate shell completion scripts",
		Long:                  completionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             completionShells,
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			gen, ok := completionGenerators[args[0]]
			if !ok {
				return fmt.Errorf("unsupported shell %q", args[0])
			}
			if err := gen(cmd.Root(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("generating %s completion: %w", args[0], err)
			}
			return nil
		},
	}
}
