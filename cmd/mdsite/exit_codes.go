package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/hints"
)

// Exit codes for the mdsite CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Site built
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid flags, config, or template
	ExitIO      = 3 // File not found, permission denied
	ExitContent = 4 // A page could not be converted
)

// Sentinel errors for CLI operations.
var (
	ErrUsage              = errors.New("invalid usage")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrNoPages            = errors.New("no markdown pages found")
	ErrReadMarkdown       = errors.New("failed to read markdown file")
	ErrWriteFile          = errors.New("failed to write file")
	ErrOutputDir          = errors.New("failed to prepare output directory")
	ErrStaticCopy         = errors.New("failed to copy static files")
	ErrConfigExists       = errors.New("config file already exists")
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, mdsite.ErrMalformedMarkdown) ||
		errors.Is(err, mdsite.ErrNoHeaderFound) ||
		errors.Is(err, mdsite.ErrMissingTag) ||
		errors.Is(err, mdsite.ErrMissingChildren) ||
		errors.Is(err, mdsite.ErrMissingValue) ||
		errors.Is(err, mdsite.ErrEmptyMarkdown) ||
		errors.Is(err, mdsite.ErrHTMLConversion) {
		return ExitContent
	}

	// Usage/config/template errors (exit 2)
	if errors.Is(err, ErrUsage) ||
		errors.Is(err, ErrInvalidWorkerCount) ||
		errors.Is(err, ErrConfigExists) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidValue) ||
		errors.Is(err, mdsite.ErrUnknownEngine) ||
		errors.Is(err, mdsite.ErrTemplateLoad) ||
		errors.Is(err, mdsite.ErrTemplatePlaceholder) ||
		errors.Is(err, mdsite.ErrInvalidAssetPath) {
		return ExitUsage
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, ErrNoPages) ||
		errors.Is(err, ErrReadMarkdown) ||
		errors.Is(err, ErrWriteFile) ||
		errors.Is(err, ErrOutputDir) ||
		errors.Is(err, ErrStaticCopy) {
		return ExitIO
	}

	return ExitGeneral
}

// withHint appends an actionable hint to err when one applies.
func withHint(err error) error {
	var hint string
	switch {
	case errors.Is(err, config.ErrConfigNotFound):
		hint = hints.ForConfigNotFound(config.SearchPaths(config.DefaultName))
	case errors.Is(err, mdsite.ErrNoHeaderFound):
		hint = hints.ForNoHeader()
	case errors.Is(err, mdsite.ErrMalformedMarkdown):
		hint = hints.ForMalformedMarkdown()
	case errors.Is(err, assets.ErrTemplateNotFound):
		hint = hints.ForTemplateNotFound(assets.TemplateNames())
	case errors.Is(err, mdsite.ErrTemplatePlaceholder):
		hint = hints.ForTemplatePlaceholder()
	case errors.Is(err, ErrOutputDir):
		hint = hints.ForOutputDirectory()
	case errors.Is(err, ErrNoPages):
		hint = hints.ForContentDirectory()
	case errors.Is(err, context.DeadlineExceeded):
		hint = hints.ForTimeout()
	}
	if hint == "" {
		return err
	}
	return fmt.Errorf("%w%s", err, hint)
}
