package markdown

import (
	"errors"
	"strings"
)

// ErrNoHeaderFound indicates the markdown has no level-one heading line.
var ErrNoHeaderFound = errors.New("markdown does not contain a level-one heading")

// ExtractTitle returns the text of the first line starting with "# ".
// Inline markers are kept as written.
func ExtractTitle(markdown string) (string, error) {
	for _, line := range strings.Split(markdown, "\n") {
		if title, ok := strings.CutPrefix(line, "# "); ok {
			return strings.TrimSpace(title), nil
		}
	}
	return "", ErrNoHeaderFound
}
