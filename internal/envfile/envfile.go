// Package envfile appends KEY=VALUE lines to a local env file.
//
// Existing content is always preserved: Read returns the current content,
// and WriteAppended writes it back followed by a blank separator line and
// the new lines. A missing file is treated as empty; any other read error
// is returned.
package envfile

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/joho/godotenv"
)

// newFileMode is used when the env file does not exist yet.
const newFileMode fs.FileMode = 0o600

// Read returns the file content, or "" if the file does not exist.
func Read(path string) (string, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// AppendContent returns existing followed by a blank line and the given lines.
func AppendContent(existing string, lines []string) string {
	var sb strings.Builder
	sb.WriteString(existing)
	sb.WriteString("\n")
	sb.WriteString(strings.Join(lines, "\n"))
	sb.WriteString("\n")
	return sb.String()
}

// WriteAppended writes existing followed by lines to path. Callers pass the
// content they obtained from Read so that checks on it and the write see the
// same bytes. It is a no-op when lines is empty.
func WriteAppended(path, existing string, lines []string) error {
	if len(lines) == 0 {
		return nil
	}

	mode := newFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	if err := os.WriteFile(path, []byte(AppendContent(existing, lines)), mode); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ExistingKeys parses env content and returns the keys it defines.
func ExistingKeys(content string) (map[string]string, error) {
	values, err := godotenv.Unmarshal(content)
	if err != nil {
		return nil, fmt.Errorf("parsing env content: %w", err)
	}
	return values, nil
}

// DuplicateKeys returns the keys of lines that are already defined in
// existing, sorted. Lines without "=" are ignored.
func DuplicateKeys(existing map[string]string, lines []string) []string {
	var dups []string
	seen := make(map[string]bool)
	for _, line := range lines {
		key, _, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		if _, found := existing[key]; found && !seen[key] {
			dups = append(dups, key)
			seen[key] = true
		}
	}
	sort.Strings(dups)
	return dups
}
