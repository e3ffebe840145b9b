// Package hints provides actionable error hints for common failure scenarios.
// Hints are formatted consistently as "\n  hint: <text>" for appending to error messages.
package hints

import (
	"strings"
)

// ForConfigNotFound suggests --config or creating one of the searched files.
func ForConfigNotFound(searchedPaths []string) string {
	hint := "use --config /path/to/file.yaml or run \"mdsite init\""

	// Prefer suggesting the per-user location
	for _, p := range searchedPaths {
		if strings.Contains(p, ".config/go-mdsite") {
			hint += ", or create " + p
			break
		}
	}

	return format(hint)
}

// ForNoHeader explains what the title extractor looks for.
func ForNoHeader() string {
	return format("every page needs a top-level heading line starting with \"# \"")
}

// ForMalformedMarkdown lists the delimiters that must come in pairs.
func ForMalformedMarkdown() string {
	return format("check for an unclosed **, _ or ` delimiter")
}

// ForTemplateNotFound lists the embedded templates, if any.
func ForTemplateNotFound(available []string) string {
	if len(available) == 0 {
		return format("pass a template file path such as ./template.html")
	}
	return format("available: " + strings.Join(available, ", ") + "; or pass a file path")
}

// ForTemplatePlaceholder reminds which placeholder is mandatory.
func ForTemplatePlaceholder() string {
	return format("the template must contain {{ Content }}")
}

// ForOutputDirectory returns hints for output directory creation errors.
func ForOutputDirectory() string {
	return format("check parent directory exists and is writable")
}

// ForContentDirectory returns hints when the content tree cannot be walked.
func ForContentDirectory() string {
	return format("set --content or content.dir to the folder holding your .md files")
}

// ForTimeout returns a hint about increasing timeout for slow operations.
func ForTimeout() string {
	return format("for large pages, use --timeout flag")
}

// format creates a single hint string with consistent formatting.
func format(hint string) string {
	if hint == "" {
		return ""
	}
	return "\n  hint: " + hint
}
