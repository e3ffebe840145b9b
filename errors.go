package mdsite

import (
	"errors"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/htmlnode"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown    = errors.New("markdown content cannot be empty")
	ErrInvalidAssetPath = errors.New("invalid asset path")
	ErrTemplateLoad     = errors.New("failed to load template")
)

// Errors raised by the conversion core, re-exported for errors.Is.
var (
	ErrMalformedMarkdown = markdown.ErrMalformedMarkdown
	ErrNoHeaderFound     = markdown.ErrNoHeaderFound
	ErrMissingTag        = htmlnode.ErrMissingTag
	ErrMissingChildren   = htmlnode.ErrMissingChildren
	ErrMissingValue      = htmlnode.ErrMissingValue
)

// Errors raised by the page pipeline, re-exported for errors.Is.
var (
	ErrHTMLConversion      = pipeline.ErrHTMLConversion
	ErrUnknownEngine       = pipeline.ErrUnknownEngine
	ErrTemplatePlaceholder = pipeline.ErrTemplatePlaceholder
	ErrTemplateNotFound    = assets.ErrTemplateNotFound
	ErrStyleNotFound       = assets.ErrStyleNotFound
)
