package markdown

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrMalformedMarkdown indicates an inline delimiter without its closing pair.
var ErrMalformedMarkdown = errors.New("malformed markdown")

// SpanKind identifies the inline formatting of a Span.
type SpanKind int

// Inline span kinds.
const (
	PlainText SpanKind = iota
	Bold
	Italic
	Code
	Link
	Image
)

// String returns the lower-case name of the kind.
func (k SpanKind) String() string {
	switch k {
	case PlainText:
		return "text"
	case Bold:
		return "bold"
	case Italic:
		return "italic"
	case Code:
		return "code"
	case Link:
		return "link"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("SpanKind(%d)", int(k))
	}
}

// Span is the smallest inline-formatted piece of text.
// Target is only set for Link and Image spans.
type Span struct {
	Content string
	Kind    SpanKind
	Target  string
}

// HasTarget reports whether the span kind carries a target URL.
func (s Span) HasTarget() bool {
	return s.Kind == Link || s.Kind == Image
}

// delimiterPass describes one round of fence matching.
type delimiterPass struct {
	delimiter string
	kind      SpanKind
}

// delimiterPasses run in priority order. Bold must precede italic and code so
// that "**" is never read as two single-character fences.
var delimiterPasses = []delimiterPass{
	{delimiter: "**", kind: Bold},
	{delimiter: "_", kind: Italic},
	{delimiter: "`", kind: Code},
}

var (
	imagePattern = regexp.MustCompile(`!\[(.*?)\]\((.*?)\)`)
	linkPattern  = regexp.MustCompile(`\[(.*?)\]\((.*?)\)`)
)

// Tokenize splits block text (block markers already stripped) into spans.
// Returns ErrMalformedMarkdown if any delimiter is left unpaired.
func Tokenize(text string) ([]Span, error) {
	if text == "" {
		return nil, nil
	}

	spans := []Span{{Content: text, Kind: PlainText}}
	for _, pass := range delimiterPasses {
		var err error
		spans, err = splitDelimiter(spans, pass.delimiter, pass.kind)
		if err != nil {
			return nil, err
		}
	}

	spans = splitImages(spans)
	spans = splitLinks(spans)
	return spans, nil
}

// splitDelimiter rescans every PlainText span for delimiter pairs.
// Spans of other kinds pass through untouched.
func splitDelimiter(spans []Span, delimiter string, kind SpanKind) ([]Span, error) {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainText {
			out = append(out, span)
			continue
		}

		pieces := strings.Split(span.Content, delimiter)
		// n delimiters give n+1 pieces; an even piece count means an odd delimiter count.
		if len(pieces)%2 == 0 {
			return nil, fmt.Errorf("%w: unmatched %q in %q", ErrMalformedMarkdown, delimiter, span.Content)
		}

		for i, piece := range pieces {
			if piece == "" {
				continue
			}
			pieceKind := PlainText
			if i%2 == 1 {
				pieceKind = kind
			}
			out = append(out, Span{Content: piece, Kind: pieceKind})
		}
	}
	return out, nil
}

// splitImages extracts ![label](target) occurrences from PlainText spans.
func splitImages(spans []Span) []Span {
	return splitPattern(spans, imagePattern, Image, nil)
}

// splitLinks extracts [label](target) occurrences from PlainText spans.
// A bracket preceded by '!' is image syntax and never a link.
func splitLinks(spans []Span) []Span {
	return splitPattern(spans, linkPattern, Link, func(text string, start int) bool {
		return start > 0 && text[start-1] == '!'
	})
}

// splitPattern replaces non-overlapping matches of re inside PlainText spans
// with spans of the given kind. The label is submatch 1, the target submatch 2.
// skip, when set, rejects a match by its start offset; the rejected text
// stays plain.
func splitPattern(spans []Span, re *regexp.Regexp, kind SpanKind, skip func(text string, start int) bool) []Span {
	out := make([]Span, 0, len(spans))
	for _, span := range spans {
		if span.Kind != PlainText {
			out = append(out, span)
			continue
		}

		text := span.Content
		matches := re.FindAllStringSubmatchIndex(text, -1)
		if len(matches) == 0 {
			out = append(out, span)
			continue
		}

		cursor := 0
		for _, m := range matches {
			if skip != nil && skip(text, m[0]) {
				continue
			}
			if m[0] > cursor {
				out = append(out, Span{Content: text[cursor:m[0]], Kind: PlainText})
			}
			out = append(out, Span{
				Content: text[m[2]:m[3]],
				Kind:    kind,
				Target:  text[m[4]:m[5]],
			})
			cursor = m[1]
		}
		if cursor < len(text) {
			out = append(out, Span{Content: text[cursor:], Kind: PlainText})
		}
	}
	return out
}
