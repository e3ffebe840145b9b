package pipeline

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// Template placeholders replaced during page assembly.
const (
	TitlePlaceholder   = "{{ Title }}"
	ContentPlaceholder = "{{ Content }}"
)

// ErrTemplatePlaceholder indicates a page template lacks the content placeholder.
var ErrTemplatePlaceholder = errors.New("template missing placeholder")

// PageData holds the values substituted into a page template.
type PageData struct {
	Title   string
	Content string
}

// PageAssembler defines the contract for building a full page from a template.
type PageAssembler interface {
	Assemble(ctx context.Context, tmpl string, data PageData) (string, error)
}

// PlaceholderAssembler substitutes placeholders with plain string replacement.
// Values are inserted verbatim; the content is already HTML.
type PlaceholderAssembler struct{}

// Assemble replaces every TitlePlaceholder and ContentPlaceholder in tmpl.
// Replacement happens in a single pass, so placeholder text inside the
// substituted values is left alone.
func (a *PlaceholderAssembler) Assemble(ctx context.Context, tmpl string, data PageData) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if err := ValidateTemplate(tmpl); err != nil {
		return "", err
	}

	r := strings.NewReplacer(
		TitlePlaceholder, data.Title,
		ContentPlaceholder, data.Content,
	)
	return r.Replace(tmpl), nil
}

// ValidateTemplate checks that tmpl can receive page content.
// A missing title placeholder is allowed.
func ValidateTemplate(tmpl string) error {
	if !strings.Contains(tmpl, ContentPlaceholder) {
		return fmt.Errorf("%w: %s", ErrTemplatePlaceholder, ContentPlaceholder)
	}
	return nil
}
