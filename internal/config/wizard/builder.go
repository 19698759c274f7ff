package wizard

import (
	"fmt"

	"github.com/aitown/townsetup/internal/config"
)

// EnvPair is a variable destined for the deployment environment.
type EnvPair struct {
	Key   string
	Value string
}

// Plan is everything a wizard run will apply.
type Plan struct {
	// EnvPairs are set in the deployment environment, in prompt order.
	EnvPairs []EnvPair

	// LocalLines are appended to the local env file as KEY=VALUE lines.
	LocalLines []string
}

// Applicable returns the pairs that will actually be sent to the
// deployment environment: those with a non-empty value.
func (p *Plan) Applicable() []EnvPair {
	pairs := make([]EnvPair, 0, len(p.EnvPairs))
	for _, pair := range p.EnvPairs {
		if pair.Value != "" {
			pairs = append(pairs, pair)
		}
	}
	return pairs
}

// BuildPlan creates a Plan from the wizard result.
func BuildPlan(result *Result) *Plan {
	plan := &Plan{}

	for _, field := range ProviderFields[ParseProvider(string(result.Provider))] {
		value := result.ProviderValues[field.Key]
		// Required fields are queued as-is, even when empty
		if field.Required || value != "" {
			plan.EnvPairs = append(plan.EnvPairs, EnvPair{Key: field.Key, Value: value})
		}
	}

	if result.ReplicateToken != "" {
		plan.EnvPairs = append(plan.EnvPairs, EnvPair{Key: ReplicateField.Key, Value: result.ReplicateToken})
	}

	if result.ConfigureAuth {
		plan.LocalLines = append(plan.LocalLines,
			KeyClerkPublishable+"="+result.ClerkPublishableKey,
			KeyClerkSecret+"="+result.ClerkSecretKey,
		)
	}

	if result.SelfHost {
		url := result.SelfHostedURL
		if url == "" {
			url = config.DefaultSelfHostedURL
		}
		plan.LocalLines = append(plan.LocalLines,
			fmt.Sprintf("%s=%q", KeySelfHostedAdminKey, result.SelfHostedAdminKey),
			KeySelfHostedURL+"="+url,
		)
	}

	return plan
}
