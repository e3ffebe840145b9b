package mdsite

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/markdown"
	"github.com/alnah/go-mdsite/internal/pipeline"
)

// Converter orchestrates the Markdown-to-page pipeline.
// Create with NewConverter and call Convert for each page.
type Converter struct {
	cfg           converterConfig
	assetLoader   assets.AssetLoader
	preprocessor  pipeline.MarkdownPreprocessor
	htmlConverter pipeline.HTMLConverter
	assembler     pipeline.PageAssembler
	template      string
}

// NewConverter creates a Converter with default configuration.
// Returns error if the engine is unknown or the template cannot be loaded.
func NewConverter(opts ...Option) (*Converter, error) {
	c := &Converter{
		cfg: converterConfig{
			timeout:       defaultTimeout,
			engine:        pipeline.EngineNative,
			templateInput: assets.DefaultTemplateName,
		},
		preprocessor: &pipeline.LineNormalizer{},
		assembler:    &pipeline.PlaceholderAssembler{},
	}

	for _, opt := range opts {
		opt(c)
	}

	resolver, err := assets.NewAssetResolver(c.cfg.assetPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
	}
	c.assetLoader = resolver

	if c.htmlConverter, err = pipeline.NewHTMLConverter(c.cfg.engine); err != nil {
		return nil, err
	}

	if err := c.resolveTemplate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Convert runs the pipeline on one page.
// The context is used for cancellation; the converter timeout applies on top.
// Recovers from internal panics to prevent crashes from propagating to callers.
func (c *Converter) Convert(ctx context.Context, input Input) (result *Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()

	if input.Markdown == "" {
		return nil, ErrEmptyMarkdown
	}

	tmpl := c.template
	if input.Template != "" {
		if err := pipeline.ValidateTemplate(input.Template); err != nil {
			return nil, err
		}
		tmpl = input.Template
	}

	ctx, cancel := context.WithTimeout(ctx, c.cfg.timeout)
	defer cancel()

	mdContent := c.preprocessor.PreprocessMarkdown(ctx, input.Markdown)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	fragment, err := c.htmlConverter.ToHTML(ctx, mdContent)
	if err != nil {
		return nil, fmt.Errorf("converting to HTML: %w", err)
	}

	title, err := markdown.ExtractTitle(mdContent)
	if err != nil {
		if !errors.Is(err, markdown.ErrNoHeaderFound) || input.FallbackTitle == "" {
			return nil, err
		}
		title = input.FallbackTitle
	}

	page, err := c.assembler.Assemble(ctx, tmpl, pipeline.PageData{Title: title, Content: fragment})
	if err != nil {
		return nil, fmt.Errorf("assembling page: %w", err)
	}

	page, err = pipeline.RewriteBasePath(page, input.BasePath)
	if err != nil {
		return nil, fmt.Errorf("rewriting base path: %w", err)
	}

	return &Result{Title: title, Fragment: fragment, Page: page}, nil
}

// Template returns the page template the converter was built with.
func (c *Converter) Template() string {
	return c.template
}

// Stylesheet loads a stylesheet by name, custom asset path first.
func (c *Converter) Stylesheet(name string) (string, error) {
	return c.assetLoader.LoadStyle(name)
}

// resolveTemplate loads the template by path or name and validates it.
func (c *Converter) resolveTemplate() error {
	input := c.cfg.templateInput

	var (
		content string
		err     error
	)
	if fileutil.IsFilePath(input) {
		var data []byte
		data, err = os.ReadFile(input) // #nosec G304 -- user-provided path
		content = string(data)
	} else {
		content, err = c.assetLoader.LoadTemplate(input)
	}
	if err != nil {
		return fmt.Errorf("%w %q: %w", ErrTemplateLoad, input, err)
	}

	if err := pipeline.ValidateTemplate(content); err != nil {
		return fmt.Errorf("template %q: %w", input, err)
	}
	c.template = content
	return nil
}

// normalizer is shared by the package-level helpers; it holds no state.
var normalizer pipeline.MarkdownPreprocessor = &pipeline.LineNormalizer{}

// MarkdownToHTML converts Markdown to an HTML fragment with the native engine.
// Line endings are normalized first, as in Convert.
func MarkdownToHTML(md string) (string, error) {
	return markdown.ToHTML(normalizer.PreprocessMarkdown(context.Background(), md))
}

// ExtractTitle returns the text of the first line starting with "# ".
// Line endings are normalized first, as in Convert.
func ExtractTitle(md string) (string, error) {
	return markdown.ExtractTitle(normalizer.PreprocessMarkdown(context.Background(), md))
}
