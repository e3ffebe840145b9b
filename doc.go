// Package mdsite converts Markdown pages into HTML pages for a static site.
//
// # Quick Start
//
//	conv, err := mdsite.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Convert(ctx, mdsite.Input{
//	    Markdown: "# Hello\n\nWorld",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("index.html", []byte(result.Page), 0o644)
//
// The result carries the page title, the bare HTML fragment and the full
// page built from the template.
//
// # Conversion Pipeline
//
//  1. Markdown preprocessing (line ending normalization)
//  2. Markdown to HTML fragment (native engine or goldmark)
//  3. Title extraction from the first "# " line
//  4. Template assembly ({{ Title }} and {{ Content }})
//  5. Base path rewriting of root-relative href and src attributes
//
// The native engine is deliberately small: blocks are separated by blank
// lines, inline spans (**bold**, _italic_, `code`, links, images) do not
// nest, and unbalanced delimiters are an error (ErrMalformedMarkdown).
//
// # Configuration
//
//	conv, err := mdsite.NewConverter(
//	    mdsite.WithTimeout(10 * time.Second),
//	    mdsite.WithEngine("goldmark"),
//	    mdsite.WithTemplate("./template.html"),
//	    mdsite.WithAssetPath("/path/to/assets"),
//	)
//
// A Converter holds no per-call state and is safe for concurrent use. Use
// ResolvePoolSize to size a worker set for batch builds.
package mdsite
