package config

import (
	"errors"
	"strings"
)

var (
	errEnvFileRequired        = errors.New("env file path is required")
	errPackageManagerRequired = errors.New("package manager is required")
	errPackageManagerInvalid  = errors.New("package manager must be a single executable name")
)

// Options controls a single setup run.
type Options struct {
	// EnvFile is the local env file that collected secrets are appended to.
	EnvFile string

	// PackageManager is the binary invoked as "<PackageManager> install".
	PackageManager string

	// Plain forces line-based prompts even when stdin is a terminal.
	Plain bool

	// DryRun prints commands and file changes instead of performing them.
	DryRun bool

	// Verbose enables debug logging.
	Verbose bool
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{
		EnvFile:        DefaultEnvFile,
		PackageManager: DefaultPackageManager,
	}
}

// Validate checks that the options can drive a setup run.
func (o Options) Validate() error {
	if strings.TrimSpace(o.EnvFile) == "" {
		return errEnvFileRequired
	}
	pm := strings.TrimSpace(o.PackageManager)
	if pm == "" {
		return errPackageManagerRequired
	}
	if strings.ContainsAny(pm, " \t") {
		return errPackageManagerInvalid
	}
	return nil
}
