package mdsite

import "time"

// Input contains conversion parameters for one page.
type Input struct {
	Markdown      string // Markdown content (required)
	Template      string // Page template content (optional, overrides the converter template)
	BasePath      string // Prefix for root-relative links, "" or "/" = none
	FallbackTitle string // Title used when the page has no "# " heading (optional)
}

// Result holds the outputs of a page conversion.
type Result struct {
	Title    string // Text of the first "# " heading
	Fragment string // HTML fragment produced by the engine
	Page     string // Full page: template with title and fragment substituted
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	timeout       time.Duration
	engine        string
	templateInput string // name or file path
	assetPath     string
}

// defaultTimeout is used when no timeout is specified.
const defaultTimeout = 30 * time.Second

// WithTimeout bounds each Convert call.
// Panics if d <= 0 (programmer error, similar to time.NewTicker).
func WithTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("mdsite: WithTimeout duration must be positive")
	}
	return func(c *Converter) {
		c.cfg.timeout = d
	}
}

// WithEngine selects the Markdown engine: "native" (default) or "goldmark".
func WithEngine(name string) Option {
	return func(c *Converter) {
		c.cfg.engine = name
	}
}

// WithTemplate selects the page template by embedded name ("default") or by
// file path (any value containing a path separator).
func WithTemplate(nameOrPath string) Option {
	return func(c *Converter) {
		c.cfg.templateInput = nameOrPath
	}
}

// WithAssetPath adds a directory searched before the embedded assets.
// Layout: {path}/templates/{name}.html and {path}/styles/{name}.css.
func WithAssetPath(path string) Option {
	return func(c *Converter) {
		c.cfg.assetPath = path
	}
}
