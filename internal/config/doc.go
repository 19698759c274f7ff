// Package config defines the run options shared by the setup commands.
//
// The [Options] struct is populated from command-line flags and carries
// the paths and tool names the setup flow uses for its side effects:
// the local env file, the package manager used to install dependencies,
// and the deployment CLI used to set remote environment variables.
package config
