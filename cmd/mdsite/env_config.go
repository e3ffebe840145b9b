package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/alnah/go-mdsite/internal/config"
)

// envPrefix marks the environment variables read by mdsite.
const envPrefix = "MDSITE_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // MDSITE_CONFIG
	ContentDir string        // MDSITE_CONTENT_DIR
	StaticDir  string        // MDSITE_STATIC_DIR
	OutputDir  string        // MDSITE_OUTPUT_DIR
	BasePath   string        // MDSITE_BASE_PATH
	Template   string        // MDSITE_TEMPLATE
	AssetPath  string        // MDSITE_ASSET_PATH
	Engine     string        // MDSITE_ENGINE
	Timeout    time.Duration // MDSITE_TIMEOUT
	Workers    int           // MDSITE_WORKERS
}

// knownEnvVars lists valid MDSITE_* variables, for typo detection.
var knownEnvVars = map[string]bool{
	"MDSITE_CONFIG":      true,
	"MDSITE_CONTENT_DIR": true,
	"MDSITE_STATIC_DIR":  true,
	"MDSITE_OUTPUT_DIR":  true,
	"MDSITE_BASE_PATH":   true,
	"MDSITE_TEMPLATE":    true,
	"MDSITE_ASSET_PATH":  true,
	"MDSITE_ENGINE":      true,
	"MDSITE_TIMEOUT":     true,
	"MDSITE_WORKERS":     true,
}

// loadEnvConfig reads MDSITE_* values. Unparseable numbers are ignored.
func loadEnvConfig(getenv func(string) string) *envConfig {
	cfg := &envConfig{
		ConfigPath: getenv("MDSITE_CONFIG"),
		ContentDir: getenv("MDSITE_CONTENT_DIR"),
		StaticDir:  getenv("MDSITE_STATIC_DIR"),
		OutputDir:  getenv("MDSITE_OUTPUT_DIR"),
		BasePath:   getenv("MDSITE_BASE_PATH"),
		Template:   getenv("MDSITE_TEMPLATE"),
		AssetPath:  getenv("MDSITE_ASSET_PATH"),
		Engine:     getenv("MDSITE_ENGINE"),
	}

	if timeout := getenv("MDSITE_TIMEOUT"); timeout != "" {
		if d, err := time.ParseDuration(timeout); err == nil && d > 0 {
			cfg.Timeout = d
		}
	}
	if workers := getenv("MDSITE_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}
	return cfg
}

// warnUnknownEnvVars reports MDSITE_* variables that mdsite does not read.
func warnUnknownEnvVars(w io.Writer, environ []string) {
	for _, kv := range environ {
		if !strings.HasPrefix(kv, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(kv, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig overlays set environment values onto cfg.
// Precedence: flags > env > config file > defaults; flags are merged later.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	overlay := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	overlay(&cfg.Content.Dir, env.ContentDir)
	overlay(&cfg.Static.Dir, env.StaticDir)
	overlay(&cfg.Output.Dir, env.OutputDir)
	overlay(&cfg.Site.BasePath, env.BasePath)
	overlay(&cfg.Template.Name, env.Template)
	overlay(&cfg.Template.Assets, env.AssetPath)
	overlay(&cfg.Engine.Name, env.Engine)
	if env.Workers > 0 {
		cfg.Workers = env.Workers
	}
}
