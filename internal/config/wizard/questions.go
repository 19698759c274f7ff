package wizard

import (
	"context"

	"github.com/aitown/townsetup/internal/config"
)

// runProviderGroup prompts for the provider and its credentials.
func runProviderGroup(ctx context.Context, p Prompter, result *Result) error {
	answer, err := p.Ask(ctx, Question{
		Title:       "Choose LLM provider",
		Description: "Backend used for chat and embeddings",
		Options:     providerNames(),
		Default:     string(DefaultProvider),
	})
	if err != nil {
		return err
	}

	result.Provider = ParseProvider(answer)
	result.ProviderValues = make(map[string]string, len(ProviderFields[result.Provider]))

	for _, field := range ProviderFields[result.Provider] {
		value, err := p.Ask(ctx, field.question())
		if err != nil {
			return err
		}
		result.ProviderValues[field.Key] = value
	}

	return nil
}

// runReplicateGroup prompts for the optional Replicate token.
func runReplicateGroup(ctx context.Context, p Prompter, result *Result) error {
	token, err := p.Ask(ctx, ReplicateField.question())
	if err != nil {
		return err
	}
	result.ReplicateToken = token
	return nil
}

// runAuthGroup prompts for Clerk keys when auth is enabled.
func runAuthGroup(ctx context.Context, p Prompter, result *Result) error {
	answer, err := p.Ask(ctx, Question{
		Title:       "Configure Clerk auth?",
		Description: "Keys are written to the local env file only",
		Default:     "n",
		Confirm:     true,
	})
	if err != nil {
		return err
	}

	result.ConfigureAuth = isAffirmative(answer)
	if !result.ConfigureAuth {
		return nil
	}

	if result.ClerkPublishableKey, err = p.Ask(ctx, Question{Title: KeyClerkPublishable}); err != nil {
		return err
	}
	if result.ClerkSecretKey, err = p.Ask(ctx, Question{Title: KeyClerkSecret, Secret: true}); err != nil {
		return err
	}
	return nil
}

// runSelfHostGroup prompts for the self-hosted backend settings.
func runSelfHostGroup(ctx context.Context, p Prompter, result *Result) error {
	answer, err := p.Ask(ctx, Question{
		Title:       "Self-hosting Convex?",
		Description: "Admin key and URL are written to the local env file only",
		Default:     "n",
		Confirm:     true,
	})
	if err != nil {
		return err
	}

	result.SelfHost = isAffirmative(answer)
	if !result.SelfHost {
		return nil
	}

	if result.SelfHostedAdminKey, err = p.Ask(ctx, Question{Title: KeySelfHostedAdminKey, Secret: true}); err != nil {
		return err
	}
	if result.SelfHostedURL, err = p.Ask(ctx, Question{
		Title:   KeySelfHostedURL,
		Default: config.DefaultSelfHostedURL,
	}); err != nil {
		return err
	}
	return nil
}
