package handlers

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/mattn/go-isatty"

	"github.com/aitown/townsetup/internal/config"
	"github.com/aitown/townsetup/internal/config/wizard"
	"github.com/aitown/townsetup/internal/deploy"
	"github.com/aitown/townsetup/internal/envfile"
	"github.com/aitown/townsetup/internal/logging"
	"github.com/aitown/townsetup/internal/runner"
	"github.com/aitown/townsetup/internal/ui"
	"github.com/aitown/townsetup/internal/util/prerequisites"
)

// Factory function variables for setup - can be replaced in tests.
var (
	// setupOut receives the banner, summary and completion messages.
	setupOut io.Writer = os.Stdout

	// newLogger builds the logger for a run.
	newLogger = func(verbose bool) *log.Logger {
		return logging.New(os.Stderr, verbose)
	}

	// isInteractiveTTY reports whether huh forms can be used.
	isInteractiveTTY = func() bool {
		return isTerminal(os.Stdin) && isTerminal(os.Stdout)
	}

	// newLinePrompter builds the prompter used for plain or piped input.
	newLinePrompter = func() wizard.Prompter {
		return wizard.NewLinePrompter(os.Stdin, os.Stdout)
	}

	// newFormPrompter builds the prompter used on interactive terminals.
	newFormPrompter = func() wizard.Prompter {
		return wizard.NewFormPrompter()
	}

	// newExecRunner runs external commands for real.
	newExecRunner = func() runner.Runner {
		return runner.NewExecRunner()
	}

	// checkTools verifies external tools are on PATH.
	checkTools = prerequisites.Check
)

// Setup runs the interactive setup: it installs dependencies, collects
// provider credentials, sets them in the deployment environment and
// appends local-only secrets to the env file.
func Setup(ctx context.Context, opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	logger := newLogger(opts.Verbose)

	printWelcome(opts)

	p := selectPrompter(opts.Plain)
	defer func() { _ = p.Close() }()

	var r runner.Runner = newExecRunner()
	if opts.DryRun {
		r = &runner.DryRunner{Out: setupOut}
	}

	install, err := wizard.ConfirmInstall(ctx, p, opts.PackageManager)
	if err != nil {
		return err
	}
	if install {
		if err := requireTools(logger, opts, prerequisites.InstallTools(opts.PackageManager)); err != nil {
			return err
		}
		logger.Debug("installing dependencies", "packageManager", opts.PackageManager)
		if err := deploy.InstallDependencies(ctx, r, opts.PackageManager); err != nil {
			return err
		}
	}

	result, err := wizard.RunWizard(ctx, p)
	if err != nil {
		return fmt.Errorf("wizard canceled: %w", err)
	}

	// No more input is read once side effects start
	if err := p.Close(); err != nil {
		return fmt.Errorf("closing prompter: %w", err)
	}

	plan := wizard.BuildPlan(result)
	logger.Debug("plan built",
		"provider", result.Provider,
		"envPairs", len(plan.EnvPairs),
		"applicable", len(plan.Applicable()),
		"localLines", len(plan.LocalLines))

	if err := applyEnv(ctx, logger, opts, r, plan); err != nil {
		return err
	}

	if err := persistLocalLines(logger, opts, plan.LocalLines); err != nil {
		return err
	}

	printSummary(opts, plan)

	return nil
}

// selectPrompter picks huh forms on a terminal and line prompts otherwise.
func selectPrompter(plain bool) wizard.Prompter {
	if !plain && isInteractiveTTY() {
		return newFormPrompter()
	}
	return newLinePrompter()
}

// requireTools fails when a required tool is missing. Dry runs skip the check.
func requireTools(logger *log.Logger, opts config.Options, tools []prerequisites.Tool) error {
	if opts.DryRun {
		return nil
	}

	results := checkTools(tools)
	for _, r := range results.Results {
		if r.Found {
			logger.Debug("found tool", "name", r.Tool.Name, "path", r.Path, "purpose", r.Tool.Description)
		}
	}

	if results.HasErrors() {
		return results.Error()
	}
	return nil
}

// applyEnv sets every applicable pair in the deployment environment.
func applyEnv(ctx context.Context, logger *log.Logger, opts config.Options, r runner.Runner, plan *wizard.Plan) error {
	pairs := plan.Applicable()
	if len(pairs) == 0 {
		logger.Debug("no deployment environment variables to set")
		return nil
	}

	if err := requireTools(logger, opts, prerequisites.DeployTools()); err != nil {
		return err
	}

	for _, pair := range pairs {
		logger.Debug("queued deployment variable", "key", pair.Key)
	}

	applied, err := deploy.ApplyEnv(ctx, r, pairs)
	if err != nil {
		if applied > 0 {
			fmt.Fprintln(setupOut, ui.Warning(fmt.Sprintf(
				"%d variable(s) were already set in the deployment environment before the failure.", applied)))
		}
		return err
	}

	if opts.DryRun {
		logger.Info("dry run, deployment environment unchanged", "variables", applied)
		return nil
	}
	logger.Info("deployment environment updated", "variables", applied)
	return nil
}

// persistLocalLines appends the local-only lines to the env file.
func persistLocalLines(logger *log.Logger, opts config.Options, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	existing, err := envfile.Read(opts.EnvFile)
	if err != nil {
		return err
	}

	if existing != "" {
		keys, err := envfile.ExistingKeys(existing)
		if err != nil {
			logger.Warn("could not parse existing env file", "path", opts.EnvFile, "error", err)
		} else if dups := envfile.DuplicateKeys(keys, lines); len(dups) > 0 {
			fmt.Fprintln(setupOut, ui.Warning(fmt.Sprintf(
				"%s already defines %s; the appended values take precedence.", opts.EnvFile, strings.Join(dups, ", "))))
		}
	}

	if opts.DryRun {
		fmt.Fprintf(setupOut, "would append to %s: %s\n", opts.EnvFile, strings.Join(lineKeys(lines), ", "))
		return nil
	}

	if err := envfile.WriteAppended(opts.EnvFile, existing, lines); err != nil {
		return err
	}

	fmt.Fprintf(setupOut, "Updated %s\n", opts.EnvFile)
	return nil
}

// lineKeys returns the key of each KEY=VALUE line.
func lineKeys(lines []string) []string {
	keys := make([]string, 0, len(lines))
	for _, line := range lines {
		key, _, _ := strings.Cut(line, "=")
		keys = append(keys, key)
	}
	return keys
}

// isTerminal reports whether f is attached to a terminal.
func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// printWelcome prints the banner.
func printWelcome(opts config.Options) {
	fmt.Fprint(setupOut, ui.Banner("AI Town Project Installer", "Configure the LLM provider, auth and self-hosting settings."))
	if opts.DryRun {
		fmt.Fprintln(setupOut, ui.Dim("Dry run: nothing will be executed or written."))
	}
	fmt.Fprintln(setupOut)
}

// printSummary prints what was configured and the next step.
func printSummary(opts config.Options, plan *wizard.Plan) {
	fmt.Fprintln(setupOut)

	if len(plan.EnvPairs) > 0 || len(plan.LocalLines) > 0 {
		fmt.Fprintln(setupOut, ui.Section("Summary"))
		for _, pair := range plan.EnvPairs {
			if pair.Value == "" {
				fmt.Fprintln(setupOut, ui.Row(false, pair.Key, "skipped (empty)"))
				continue
			}
			fmt.Fprintln(setupOut, ui.Row(true, pair.Key, "deployment env"))
		}
		for _, key := range lineKeys(plan.LocalLines) {
			fmt.Fprintln(setupOut, ui.Row(true, key, opts.EnvFile))
		}
		fmt.Fprintln(setupOut)
	}

	fmt.Fprintln(setupOut, ui.Success(fmt.Sprintf("Setup complete. Run %q to start the project.", opts.PackageManager+" run dev")))
}
