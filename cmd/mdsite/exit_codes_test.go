package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/config"
)

func TestExitCodeFor(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil error", nil, ExitSuccess},

		// Content errors (exit 4)
		{"malformed markdown", mdsite.ErrMalformedMarkdown, ExitContent},
		{"no header", mdsite.ErrNoHeaderFound, ExitContent},
		{"missing children", mdsite.ErrMissingChildren, ExitContent},
		{"missing value", mdsite.ErrMissingValue, ExitContent},
		{"batch failure wraps page error", fmt.Errorf("1 of 3 page(s) failed: %w", mdsite.ErrNoHeaderFound), ExitContent},

		// Usage/config errors (exit 2)
		{"usage", ErrUsage, ExitUsage},
		{"worker count", ErrInvalidWorkerCount, ExitUsage},
		{"config not found", config.ErrConfigNotFound, ExitUsage},
		{"config parse", config.ErrConfigParse, ExitUsage},
		{"config value", config.ErrInvalidValue, ExitUsage},
		{"unknown engine", mdsite.ErrUnknownEngine, ExitUsage},
		{"template load wraps not-exist", fmt.Errorf("%w: %w", mdsite.ErrTemplateLoad, os.ErrNotExist), ExitUsage},
		{"template placeholder", mdsite.ErrTemplatePlaceholder, ExitUsage},

		// I/O errors (exit 3)
		{"file not exist", os.ErrNotExist, ExitIO},
		{"permission denied", os.ErrPermission, ExitIO},
		{"read markdown", ErrReadMarkdown, ExitIO},
		{"write file", ErrWriteFile, ExitIO},
		{"no pages", ErrNoPages, ExitIO},
		{"static copy", ErrStaticCopy, ExitIO},

		// General (exit 1)
		{"unknown error", errors.New("boom"), ExitGeneral},
		{"canceled", context.Canceled, ExitGeneral},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := exitCodeFor(tt.err); got != tt.want {
				t.Errorf("exitCodeFor(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}

func TestExitCodes_BelowReserved(t *testing.T) {
	t.Parallel()

	for _, code := range []int{ExitSuccess, ExitGeneral, ExitUsage, ExitIO, ExitContent} {
		if code < 0 || code >= 126 {
			t.Errorf("exit code %d outside 0-125", code)
		}
	}
}

func TestWithHint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		wantHint string
	}{
		{"no header", mdsite.ErrNoHeaderFound, "# "},
		{"malformed", fmt.Errorf("page: %w", mdsite.ErrMalformedMarkdown), "unclosed"},
		{"template not found", mdsite.ErrTemplateNotFound, "available: default"},
		{"no pages", ErrNoPages, "--content"},
		{"timeout", context.DeadlineExceeded, "--timeout"},
		{"no hint", errors.New("boom"), ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := withHint(tt.err)
			if !errors.Is(got, tt.err) {
				t.Errorf("withHint() lost the wrapped error: %v", got)
			}
			if tt.wantHint == "" {
				if strings.Contains(got.Error(), "hint:") {
					t.Errorf("withHint() = %q, want no hint", got)
				}
				return
			}
			if !strings.Contains(got.Error(), "hint: ") || !strings.Contains(got.Error(), tt.wantHint) {
				t.Errorf("withHint() = %q, want hint containing %q", got, tt.wantHint)
			}
		})
	}
}
