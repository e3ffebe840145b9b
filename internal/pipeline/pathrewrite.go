package pipeline

import (
	"bytes"
	"errors"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// rewrittenAttrs are the attributes that can carry a root-relative URL.
var rewrittenAttrs = map[string]bool{
	"href": true,
	"src":  true,
}

// RewriteBasePath prefixes root-relative href and src values ("/about") with
// basePath, so a site built for "/" can be served from a subpath such as
// "/blog/". If basePath is empty or "/", returns the HTML unchanged.
//
// Only the attribute values change: text, entities, tag spelling and
// whitespace are copied byte for byte. Tags are found with the x/net/html
// tokenizer, so markup inside comments, scripts and styles is left alone.
//
// Does NOT rewrite:
//   - protocol-relative URLs ("//cdn.example.com/x.js")
//   - absolute URLs, anchors and relative paths
//   - srcset and CSS url() references
func RewriteBasePath(htmlContent, basePath string) (string, error) {
	prefix := normalizeBasePath(basePath)
	if prefix == "" {
		return htmlContent, nil
	}

	var b strings.Builder
	b.Grow(len(htmlContent))

	z := html.NewTokenizer(strings.NewReader(htmlContent))
	for {
		tt := z.Next()
		raw := z.Raw()
		switch tt {
		case html.ErrorToken:
			b.Write(raw)
			if err := z.Err(); !errors.Is(err, io.EOF) {
				return "", err
			}
			return b.String(), nil
		case html.StartTagToken, html.SelfClosingTagToken:
			spliceTag(&b, raw, prefix)
		default:
			b.Write(raw)
		}
	}
}

// normalizeBasePath returns basePath with a leading slash and no trailing
// slash, or "" when no rewriting is needed.
func normalizeBasePath(basePath string) string {
	trimmed := strings.Trim(strings.TrimSpace(basePath), "/")
	if trimmed == "" {
		return ""
	}
	return "/" + trimmed
}

// spliceTag writes tag with prefix inserted before every root-relative
// href or src value.
func spliceTag(b *strings.Builder, tag []byte, prefix string) {
	last := 0
	for _, at := range urlValueOffsets(tag) {
		b.Write(tag[last:at])
		b.WriteString(prefix)
		last = at
	}
	b.Write(tag[last:])
}

// urlValueOffsets scans the attributes of one raw start tag and returns the
// offsets where root-relative href and src values begin.
func urlValueOffsets(tag []byte) []int {
	var offsets []int
	n := len(tag)

	i := 1 // past '<'
	for i < n && !isHTMLSpace(tag[i]) && tag[i] != '/' && tag[i] != '>' {
		i++
	}

	for i < n {
		for i < n && (isHTMLSpace(tag[i]) || tag[i] == '/') {
			i++
		}
		if i >= n || tag[i] == '>' {
			break
		}

		nameStart := i
		for i < n && !isHTMLSpace(tag[i]) && tag[i] != '=' && tag[i] != '/' && tag[i] != '>' {
			i++
		}
		if i == nameStart {
			i++ // stray '='
			continue
		}
		name := strings.ToLower(string(tag[nameStart:i]))

		j := skipHTMLSpace(tag, i)
		if j >= n || tag[j] != '=' {
			i = j
			continue
		}
		j = skipHTMLSpace(tag, j+1)

		var valStart, valEnd int
		if j < n && (tag[j] == '"' || tag[j] == '\'') {
			valStart = j + 1
			valEnd = n
			if k := bytes.IndexByte(tag[valStart:], tag[j]); k >= 0 {
				valEnd = valStart + k
			}
			i = valEnd + 1
		} else {
			valStart = j
			for j < n && !isHTMLSpace(tag[j]) && tag[j] != '>' {
				j++
			}
			valEnd = j
			i = j
		}

		if rewrittenAttrs[name] && isRootRelative(string(tag[valStart:valEnd])) {
			offsets = append(offsets, valStart)
		}
	}
	return offsets
}

func skipHTMLSpace(s []byte, i int) int {
	for i < len(s) && isHTMLSpace(s[i]) {
		i++
	}
	return i
}

func isHTMLSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f'
}

// isRootRelative returns true for "/path" but not "//host/path".
func isRootRelative(path string) bool {
	return strings.HasPrefix(path, "/") && !strings.HasPrefix(path, "//")
}
