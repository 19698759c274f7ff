// Package main is the entry point for the townsetup CLI.
//
// townsetup is an interactive installer for AI Town projects. It asks for
// the LLM provider credentials and optional auth and self-hosting settings,
// stores the credentials in the Convex deployment environment and appends
// local-only secrets to .env.local.
//
// For detailed usage information, run:
//
//	townsetup --help
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aitown/townsetup/cmd/townsetup/commands"
)

// Version information set by goreleaser at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	commands.SetVersionInfo(version, commit, date)
	err := commands.Root().ExecuteContext(ctx)
	cancel()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
