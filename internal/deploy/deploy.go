// Package deploy wraps the external tools the setup flow drives: the
// package manager that installs project dependencies and the deployment
// CLI that stores environment variables remotely.
package deploy

import (
	"context"
	"fmt"

	"github.com/aitown/townsetup/internal/config"
	"github.com/aitown/townsetup/internal/config/wizard"
	"github.com/aitown/townsetup/internal/runner"
)

// InstallDependencies runs "<packageManager> install".
func InstallDependencies(ctx context.Context, r runner.Runner, packageManager string) error {
	if err := r.Run(ctx, packageManager, "install"); err != nil {
		return fmt.Errorf("installing dependencies: %w", err)
	}
	return nil
}

// SetEnv stores a single variable in the deployment environment.
func SetEnv(ctx context.Context, r runner.Runner, key, value string) error {
	return r.Run(ctx, config.DeployRunner, config.DeployCLI, "env", "set", key, value)
}

// ApplyEnv sets each pair with a non-empty value, in order. It stops at the
// first failure; variables set before the failure stay set. It returns the
// number of variables set.
func ApplyEnv(ctx context.Context, r runner.Runner, pairs []wizard.EnvPair) (int, error) {
	applied := 0
	for _, pair := range pairs {
		if pair.Value == "" {
			continue
		}
		if err := SetEnv(ctx, r, pair.Key, pair.Value); err != nil {
			return applied, fmt.Errorf("setting %s: %w", pair.Key, err)
		}
		applied++
	}
	return applied, nil
}
