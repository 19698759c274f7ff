// Package prerequisites checks that the external tools the setup flow
// drives are installed before any of them are invoked.
package prerequisites

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/aitown/townsetup/internal/config"
)

// Tool represents a client tool that may be required.
type Tool struct {
	// Name is the binary name to look for in PATH.
	Name string

	// Required indicates if this tool is mandatory.
	Required bool

	// Description explains what the tool is used for.
	Description string

	// InstallURL provides a URL for installation instructions.
	InstallURL string
}

// InstallTools returns the tools needed to install project dependencies.
func InstallTools(packageManager string) []Tool {
	return []Tool{
		{
			Name:        packageManager,
			Required:    true,
			Description: "Installs the project dependencies",
			InstallURL:  installURL(packageManager),
		},
	}
}

// DeployTools returns the tools needed to set deployment environment variables.
func DeployTools() []Tool {
	return []Tool{
		{
			Name:        config.DeployRunner,
			Required:    true,
			Description: "Runs the deployment CLI to store environment variables",
			InstallURL:  "https://docs.npmjs.com/downloading-and-installing-node-js-and-npm",
		},
	}
}

// installURL returns installation instructions for well-known package managers.
func installURL(packageManager string) string {
	switch packageManager {
	case "pnpm":
		return "https://pnpm.io/installation"
	case "yarn":
		return "https://yarnpkg.com/getting-started/install"
	case "bun":
		return "https://bun.sh/docs/installation"
	default:
		return "https://docs.npmjs.com/downloading-and-installing-node-js-and-npm"
	}
}

// CheckResult contains the result of checking a single tool.
type CheckResult struct {
	Tool  Tool
	Found bool
	Path  string
}

// CheckResults contains the results of checking multiple tools.
type CheckResults struct {
	Results []CheckResult
	Missing []Tool
}

// HasErrors returns true if any required tools are missing.
func (r *CheckResults) HasErrors() bool {
	for _, tool := range r.Missing {
		if tool.Required {
			return true
		}
	}
	return false
}

// Error returns an error if any required tools are missing.
func (r *CheckResults) Error() error {
	var missing []string
	for _, tool := range r.Missing {
		if tool.Required {
			missing = append(missing, fmt.Sprintf("%s (%s)", tool.Name, tool.InstallURL))
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("missing required tools: %s", strings.Join(missing, ", "))
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// Check verifies that the specified tools are available.
func Check(tools []Tool) *CheckResults {
	results := &CheckResults{}

	for _, tool := range tools {
		result := CheckResult{Tool: tool}

		path, err := lookPath(tool.Name)
		if err == nil {
			result.Found = true
			result.Path = path
		} else {
			results.Missing = append(results.Missing, tool)
		}

		results.Results = append(results.Results, result)
	}

	return results
}
