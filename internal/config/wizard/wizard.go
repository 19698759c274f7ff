package wizard

import (
	"context"
	"fmt"
)

// Result holds all the answers from the interactive wizard.
type Result struct {
	// LLM provider
	Provider       Provider
	ProviderValues map[string]string // keyed by EnvField.Key

	// Optional image generation
	ReplicateToken string

	// Auth (only set when ConfigureAuth is true)
	ConfigureAuth       bool
	ClerkPublishableKey string
	ClerkSecretKey      string

	// Self-hosted backend (only set when SelfHost is true)
	SelfHost           bool
	SelfHostedAdminKey string
	SelfHostedURL      string
}

// ConfirmInstall asks whether project dependencies should be installed.
// The answer defaults to yes.
func ConfirmInstall(ctx context.Context, p Prompter, packageManager string) (bool, error) {
	answer, err := p.Ask(ctx, Question{
		Title:   fmt.Sprintf("Run %q?", packageManager+" install"),
		Default: "y",
		Confirm: true,
	})
	if err != nil {
		return false, fmt.Errorf("install confirmation: %w", err)
	}
	return isAffirmative(answer), nil
}

// RunWizard asks the provider, credential, auth and self-hosting questions
// in order and returns the collected answers.
func RunWizard(ctx context.Context, p Prompter) (*Result, error) {
	result := &Result{}

	if err := runProviderGroup(ctx, p, result); err != nil {
		return nil, fmt.Errorf("provider: %w", err)
	}

	if err := runReplicateGroup(ctx, p, result); err != nil {
		return nil, fmt.Errorf("replicate: %w", err)
	}

	if err := runAuthGroup(ctx, p, result); err != nil {
		return nil, fmt.Errorf("auth: %w", err)
	}

	if err := runSelfHostGroup(ctx, p, result); err != nil {
		return nil, fmt.Errorf("self-hosting: %w", err)
	}

	return result, nil
}
