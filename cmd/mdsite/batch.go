package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// File permission constants.
const (
	dirPermissions  = 0o755 // rwxr-xr-x: pages are served publicly
	filePermissions = 0o644 // rw-r--r--: owner read+write, others read
)

// PageConverter is the interface for the conversion service.
type PageConverter interface {
	Convert(ctx context.Context, input mdsite.Input) (*mdsite.Result, error)
}

// Compile-time interface implementation check.
var _ PageConverter = (*mdsite.Converter)(nil)

// pageParams holds the per-site values applied to every page.
type pageParams struct {
	basePath      string
	fallbackTitle string
}

// BuildResult holds the outcome of a single page conversion.
type BuildResult struct {
	InputPath  string
	OutputPath string
	Title      string
	Err        error
	Duration   time.Duration
}

// buildBatch converts pages with up to workers goroutines sharing conv.
// Results are returned in the order of pages.
func buildBatch(ctx context.Context, conv PageConverter, pages []PageToBuild, workers int, params pageParams) []BuildResult {
	if len(pages) == 0 {
		return nil
	}

	concurrency := min(max(workers, 1), len(pages))
	results := make([]BuildResult, len(pages))
	jobs := make(chan int, len(pages))

	var wg sync.WaitGroup
	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				if err := ctx.Err(); err != nil {
					results[idx] = BuildResult{InputPath: pages[idx].InputPath, Err: err}
					continue
				}
				results[idx] = buildPage(ctx, conv, pages[idx], params)
			}
		}()
	}

	for i := range pages {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// buildPage converts one Markdown file and writes the HTML page.
func buildPage(ctx context.Context, conv PageConverter, p PageToBuild, params pageParams) (result BuildResult) {
	start := time.Now()
	result = BuildResult{InputPath: p.InputPath, OutputPath: p.OutputPath}
	defer func() { result.Duration = time.Since(start) }()

	content, err := os.ReadFile(p.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrReadMarkdown, err)
		return result
	}

	res, err := conv.Convert(ctx, mdsite.Input{
		Markdown:      string(content),
		BasePath:      params.basePath,
		FallbackTitle: params.fallbackTitle,
	})
	if err != nil {
		result.Err = err
		return result
	}
	result.Title = res.Title

	if err := os.MkdirAll(filepath.Dir(p.OutputPath), dirPermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteFile, err)
		return result
	}
	if err := fileutil.WriteFileAtomic(p.OutputPath, []byte(res.Page), filePermissions); err != nil {
		result.Err = fmt.Errorf("%w: %w", ErrWriteFile, err)
		return result
	}
	return result
}

// ResultSummary holds the count of succeeded and failed pages.
type ResultSummary struct {
	Succeeded int
	Failed    int
	FirstErr  error
}

// countResults tallies succeeded and failed pages.
func countResults(results []BuildResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			if summary.FirstErr == nil {
				summary.FirstErr = r.Err
			}
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResults writes one line per page and a summary, returning the tally.
func printResults(results []BuildResult, quiet, verbose bool, env *Environment) ResultSummary {
	summary := countResults(results)

	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, withHint(r.Err))
			continue
		}
		if quiet {
			continue
		}
		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s %q (%v)\n", r.InputPath, r.OutputPath, r.Title, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "Generated %s\n", r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}
	return summary
}
