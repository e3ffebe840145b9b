// Package pipeline implements the per-page Markdown-to-HTML pipeline.
//
// This package handles the stages around the markdown core:
//   - Markdown preprocessing (line ending normalization, blank line compression)
//   - Markdown to HTML fragment conversion (native engine or Goldmark)
//   - Page assembly: substituting title and content into a template
//   - Base path rewriting of root-relative links for sites served from a subpath
//
// File system work (static mirroring, page discovery, writing) is handled by
// the CLI. This separation keeps the pipeline a pure string-to-string
// transformation that is safe to run concurrently for different pages.
package pipeline
