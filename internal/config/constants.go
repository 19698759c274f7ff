package config

// Default values for the setup flow.
const (
	// DefaultEnvFile is the local env file that receives auth and
	// self-hosting secrets.
	DefaultEnvFile = ".env.local"

	// DefaultPackageManager installs the project dependencies.
	DefaultPackageManager = "npm"

	// DeployRunner launches the deployment CLI.
	DeployRunner = "npx"

	// DeployCLI is the deployment CLI whose env store receives provider credentials.
	DeployCLI = "convex"

	// DefaultOllamaHost is shown as a hint for the Ollama host prompt.
	DefaultOllamaHost = "http://127.0.0.1:11434"

	// DefaultSelfHostedURL is used when the self-hosted backend URL is left empty.
	DefaultSelfHostedURL = "http://127.0.0.1:3210"
)
