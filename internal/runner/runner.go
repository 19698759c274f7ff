// Package runner executes external commands with structured arguments.
//
// Commands are never passed through a shell, so argument values need no
// quoting or escaping.
package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands as child processes with the given streams.
type ExecRunner struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns a runner that inherits the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

// Run starts the command and waits for it. A non-zero exit is an error.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	// #nosec G204 - arguments are passed as an argv slice, no shell is involved
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = r.Stdin
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running %s: %w", CommandLine(name, args...), err)
	}
	return nil
}

// DryRunner prints commands instead of running them.
type DryRunner struct {
	Out io.Writer
}

// Run writes the command line to Out.
func (r *DryRunner) Run(_ context.Context, name string, args ...string) error {
	_, err := fmt.Fprintf(r.Out, "would run: %s\n", CommandLine(name, args...))
	return err
}

// CommandLine renders a command for display. Arguments containing
// whitespace, quotes or an empty value are quoted.
func CommandLine(name string, args ...string) string {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, name)
	for _, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'\\") {
			a = strconv.Quote(a)
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}
