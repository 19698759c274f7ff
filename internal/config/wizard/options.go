package wizard

import (
	"strings"

	"github.com/aitown/townsetup/internal/config"
)

// Provider identifies the LLM backend whose credentials are collected.
type Provider string

// Supported providers.
const (
	ProviderOllama   Provider = "ollama"
	ProviderOpenAI   Provider = "openai"
	ProviderTogether Provider = "together"
	ProviderCustom   Provider = "custom"
)

// DefaultProvider is used for empty or unrecognized input.
const DefaultProvider = ProviderOllama

// Providers lists the supported providers in prompt order.
var Providers = []Provider{ProviderOllama, ProviderOpenAI, ProviderTogether, ProviderCustom}

// ParseProvider matches s case-insensitively against the supported providers.
// Anything else, including the empty string, yields DefaultProvider.
func ParseProvider(s string) Provider {
	p := Provider(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Providers {
		if p == known {
			return known
		}
	}
	return DefaultProvider
}

// providerNames returns the provider tags as strings.
func providerNames() []string {
	names := make([]string, len(Providers))
	for i, p := range Providers {
		names[i] = string(p)
	}
	return names
}

// EnvField describes one provider credential prompt.
type EnvField struct {
	// Key is the environment variable name, also used as the prompt title.
	Key string

	// Required fields are queued even when left empty.
	Required bool

	// Hint is displayed next to the prompt but never applied as a default.
	Hint string

	// Secret input is masked in form mode.
	Secret bool
}

// ProviderFields is the dispatch table of credential prompts per provider.
var ProviderFields = map[Provider][]EnvField{
	ProviderOllama: {
		{Key: "OLLAMA_HOST", Hint: config.DefaultOllamaHost},
		{Key: "OLLAMA_MODEL"},
		{Key: "OLLAMA_EMBEDDING_MODEL"},
	},
	ProviderOpenAI: {
		{Key: "OPENAI_API_KEY", Required: true, Secret: true},
		{Key: "OPENAI_CHAT_MODEL"},
		{Key: "OPENAI_EMBEDDING_MODEL"},
	},
	ProviderTogether: {
		{Key: "TOGETHER_API_KEY", Required: true, Secret: true},
		{Key: "TOGETHER_CHAT_MODEL"},
		{Key: "TOGETHER_EMBEDDING_MODEL"},
	},
	ProviderCustom: {
		{Key: "LLM_API_URL", Required: true},
		{Key: "LLM_API_KEY", Secret: true},
		{Key: "LLM_MODEL", Required: true},
		{Key: "LLM_EMBEDDING_MODEL", Required: true},
	},
}

// ReplicateField is asked for every provider.
var ReplicateField = EnvField{Key: "REPLICATE_API_TOKEN", Secret: true}

// Local env keys written when auth or self-hosting is configured.
const (
	KeyClerkPublishable   = "VITE_CLERK_PUBLISHABLE_KEY"
	KeyClerkSecret        = "CLERK_SECRET_KEY"
	KeySelfHostedAdminKey = "CONVEX_SELF_HOSTED_ADMIN_KEY"
	KeySelfHostedURL      = "CONVEX_SELF_HOSTED_URL"
)

// question converts the field into a prompt.
func (f EnvField) question() Question {
	q := Question{
		Title:  f.Key,
		Hint:   f.Hint,
		Secret: f.Secret,
	}
	if !f.Required && f.Hint == "" {
		q.Title += " (optional)"
	}
	return q
}
