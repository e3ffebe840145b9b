// Package config loads the site configuration file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-mdsite/internal/fileutil"
	"github.com/alnah/go-mdsite/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// DefaultName is the config name looked up when none is given.
const DefaultName = "mdsite"

// appDir is the directory under os.UserConfigDir searched for named configs.
const appDir = "go-mdsite"

// Field length limits.
const (
	MaxBasePathLength = 256
	MaxTitleLength    = 200
	MaxPathLength     = 4096
	MaxNameLength     = 100
	MaxWorkers        = 16
)

// Defaults mirror the classic content/static/docs project layout.
const (
	DefaultBasePath     = "/"
	DefaultContentDir   = "content"
	DefaultStaticDir    = "static"
	DefaultOutputDir    = "docs"
	DefaultTemplateName = "default"
	DefaultEngineName   = "native"
)

// Config holds all configuration for a site build.
type Config struct {
	Site     SiteConfig     `yaml:"site"`
	Content  ContentConfig  `yaml:"content"`
	Static   StaticConfig   `yaml:"static"`
	Output   OutputConfig   `yaml:"output"`
	Template TemplateConfig `yaml:"template"`
	Engine   EngineConfig   `yaml:"engine"`
	Workers  int            `yaml:"workers"` // 0 = auto
}

// SiteConfig defines site-wide values.
type SiteConfig struct {
	BasePath string `yaml:"basePath"` // prefix for root-relative links, "/" = none
	Title    string `yaml:"title"`    // fallback page title
}

// ContentConfig defines where Markdown pages live.
type ContentConfig struct {
	Dir string `yaml:"dir"`
}

// StaticConfig defines the directory mirrored verbatim into the output.
type StaticConfig struct {
	Dir string `yaml:"dir"` // empty = no static copy
}

// OutputConfig defines the destination directory.
type OutputConfig struct {
	Dir   string `yaml:"dir"`
	Clean bool   `yaml:"clean"` // empty the directory before a build
}

// TemplateConfig selects the page template, by embedded name or file path.
// Assets names a directory with templates/ and styles/ searched before the
// embedded assets.
type TemplateConfig struct {
	Name   string `yaml:"name"`
	Assets string `yaml:"assets,omitempty"`
}

// EngineConfig selects the Markdown engine ("native" or "goldmark").
type EngineConfig struct {
	Name string `yaml:"name"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Site:     SiteConfig{BasePath: DefaultBasePath},
		Content:  ContentConfig{Dir: DefaultContentDir},
		Static:   StaticConfig{Dir: DefaultStaticDir},
		Output:   OutputConfig{Dir: DefaultOutputDir, Clean: true},
		Template: TemplateConfig{Name: DefaultTemplateName},
		Engine:   EngineConfig{Name: DefaultEngineName},
	}
}

// Validate checks field lengths and ranges.
// Called by LoadConfig; available for callers that build a Config by hand.
func (c *Config) Validate() error {
	fields := []struct {
		name  string
		value string
		max   int
	}{
		{"site.basePath", c.Site.BasePath, MaxBasePathLength},
		{"site.title", c.Site.Title, MaxTitleLength},
		{"content.dir", c.Content.Dir, MaxPathLength},
		{"static.dir", c.Static.Dir, MaxPathLength},
		{"output.dir", c.Output.Dir, MaxPathLength},
		{"template.name", c.Template.Name, MaxPathLength},
		{"template.assets", c.Template.Assets, MaxPathLength},
		{"engine.name", c.Engine.Name, MaxNameLength},
	}
	for _, f := range fields {
		if err := validateFieldLength(f.name, f.value, f.max); err != nil {
			return err
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidValue, MaxWorkers, c.Workers)
	}
	if c.Content.Dir == "" {
		return fmt.Errorf("%w: content.dir is required", ErrInvalidValue)
	}
	if c.Output.Dir == "" {
		return fmt.Errorf("%w: output.dir is required", ErrInvalidValue)
	}
	if c.Site.BasePath != "" && !strings.HasPrefix(c.Site.BasePath, "/") {
		return fmt.Errorf("%w: site.basePath must start with \"/\", got %q", ErrInvalidValue, c.Site.BasePath)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// Encode renders the config as YAML, as written by "mdsite init".
func (c *Config) Encode() ([]byte, error) {
	return yamlutil.Marshal(c)
}

// LoadConfig loads configuration from a file path or config name.
// A value containing a path separator is a file path; anything else is a
// name searched in the current directory, then ~/.config/go-mdsite/.
// Keys missing from the file keep their DefaultConfig value.
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, err
		}
	}

	cfg := DefaultConfig()
	if err := yamlutil.ReadFileStrict(configPath, cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SearchPaths lists the files tried for a config name, in lookup order.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)
	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}
	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDir, name+ext))
		}
	}
	return paths
}

func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
