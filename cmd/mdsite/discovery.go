package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// PageToBuild pairs a Markdown source with its HTML destination.
type PageToBuild struct {
	InputPath  string
	OutputPath string
}

// isMarkdown reports whether name has a Markdown extension.
func isMarkdown(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// discoverPages lists every Markdown file under contentDir, mapped to the
// same relative location under outputDir with an .html extension.
// Hidden entries are skipped. Traversal uses an explicit stack; pages of a
// directory come before pages of its subdirectories, each in name order.
func discoverPages(contentDir, outputDir string) ([]PageToBuild, error) {
	info, err := os.Stat(contentDir)
	if err != nil {
		return nil, fmt.Errorf("content directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content directory: %w: %s", fileutil.ErrNotDirectory, contentDir)
	}

	var pages []PageToBuild
	stack := []string{"."}
	for len(stack) > 0 {
		rel := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		entries, err := os.ReadDir(filepath.Join(contentDir, rel))
		if err != nil {
			return nil, fmt.Errorf("scanning %s: %w", filepath.Join(contentDir, rel), err)
		}

		var subdirs []string
		for _, e := range entries {
			if strings.HasPrefix(e.Name(), ".") {
				continue
			}
			entryRel := filepath.Join(rel, e.Name())
			switch {
			case e.IsDir():
				subdirs = append(subdirs, entryRel)
			case e.Type().IsRegular() && isMarkdown(e.Name()):
				out, err := fileutil.ReplaceExtension(filepath.Join(outputDir, entryRel), "html")
				if err != nil {
					return nil, err
				}
				pages = append(pages, PageToBuild{
					InputPath:  filepath.Join(contentDir, entryRel),
					OutputPath: out,
				})
			}
		}
		for i := len(subdirs) - 1; i >= 0; i-- {
			stack = append(stack, subdirs[i])
		}
	}
	return pages, nil
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)", ErrInvalidWorkerCount, n)
	}
	if n > mdsite.MaxPoolSize {
		return fmt.Errorf("%w: %d (maximum is %d)", ErrInvalidWorkerCount, n, mdsite.MaxPoolSize)
	}
	return nil
}
