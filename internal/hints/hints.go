// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import "strings"

// ForConfigNotFound returns hints for config file not found errors.
// Suggests --config and, when one was searched, a user config path to create.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml"

	for _, p := range searchedPaths {
		if strings.Contains(p, "go-tinymd") {
			hint += " or create " + p
			break
		}
	}

	return format(hint)
}

// ForOutputDirectory returns hints for output file creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForHeadingTooShort returns hints for heading lines the marker cannot be sliced from.
func ForHeadingTooShort() string {
	return formatHints([]string{
		`write headings as "# Title"`,
		"use --heading clamp to render them as empty headings",
	})
}

// ForLineDecode returns hints for input that is not UTF-8 text.
func ForLineDecode() string {
	return format("re-encode the file as UTF-8 (e.g. iconv -t UTF-8)")
}

// ForInputName returns hints for input names an output name cannot be derived from.
func ForInputName() string {
	return format("name the input <file>.md or pass --output <file>.html")
}

// ForPolicy returns hints listing the accepted values of a policy option.
func ForPolicy(option string, accepted []string) string {
	if len(accepted) == 0 {
		return ""
	}
	return format(option + " accepts: " + strings.Join(accepted, ", "))
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}

// formatHints joins multiple hints with consistent formatting.
func formatHints(hints []string) string {
	if len(hints) == 0 {
		return ""
	}
	return format(strings.Join(hints, "; "))
}
