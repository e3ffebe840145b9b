package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	flag "github.com/spf13/pflag"

	mdsite "github.com/alnah/go-mdsite"
	"github.com/alnah/go-mdsite/internal/assets"
	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// stylesheetName is the file the default template links to.
const stylesheetName = "index.css"

// runBuild orchestrates a site build: clean output, copy static files,
// convert pages, report results.
func runBuild(ctx context.Context, args []string, env *Environment) error {
	start := env.Now()
	flags, positional, err := parseBuildFlags(args, env.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	env.SetVerbose(flags.common.verbose)
	defer adjustMaxProcs(env)()

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	envCfg := loadEnvConfig(env.Getenv)
	warnUnknownEnvVars(env.Stderr, env.Environ())

	cfg, err := loadBuildConfig(flags.common.config, envCfg.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, positional, cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	timeout := flags.timeout
	if timeout == 0 {
		timeout = envCfg.Timeout
	}
	opts := []mdsite.Option{
		mdsite.WithEngine(cfg.Engine.Name),
		mdsite.WithTemplate(cfg.Template.Name),
	}
	if timeout > 0 {
		opts = append(opts, mdsite.WithTimeout(timeout))
	}
	if cfg.Template.Assets != "" {
		opts = append(opts, mdsite.WithAssetPath(cfg.Template.Assets))
	}
	conv, err := mdsite.NewConverter(opts...)
	if err != nil {
		return err
	}

	if err := checkDistinctDirs(cfg); err != nil {
		return err
	}

	pages, err := discoverPages(cfg.Content.Dir, cfg.Output.Dir)
	if err != nil {
		return err
	}
	if len(pages) == 0 {
		return fmt.Errorf("%w in %s", ErrNoPages, cfg.Content.Dir)
	}
	env.Logger.Debug("discovered pages", "count", len(pages), "content", cfg.Content.Dir)

	if err := prepareOutput(cfg, conv, env); err != nil {
		return err
	}

	workers := mdsite.ResolvePoolSize(cfg.Workers)
	env.Logger.Debug("converting", "workers", workers, "engine", cfg.Engine.Name, "basePath", cfg.Site.BasePath)

	results := buildBatch(ctx, conv, pages, workers, pageParams{
		basePath:      cfg.Site.BasePath,
		fallbackTitle: cfg.Site.Title,
	})

	summary := printResults(results, flags.common.quiet, flags.common.verbose, env)
	env.Logger.Debug("build finished", "pages", len(results), "elapsed", env.Now().Sub(start))
	if summary.Failed > 0 {
		return fmt.Errorf("%d of %d page(s) failed: %w", summary.Failed, len(results), summary.FirstErr)
	}
	return nil
}

// loadBuildConfig loads the config named by flag, then env. With neither,
// an "mdsite.yaml" in the usual locations is used if present.
func loadBuildConfig(flagValue, envValue string) (*config.Config, error) {
	name := flagValue
	if name == "" {
		name = envValue
	}
	if name != "" {
		return config.LoadConfig(name)
	}

	cfg, err := config.LoadConfig(config.DefaultName)
	if errors.Is(err, config.ErrConfigNotFound) {
		return config.DefaultConfig(), nil
	}
	return cfg, err
}

// mergeFlags merges CLI flags into config. CLI values override config values.
// A positional argument sets the base path unless --base-path is given.
func mergeFlags(flags *buildFlags, positional []string, cfg *config.Config) {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}
	set(&cfg.Content.Dir, flags.content)
	set(&cfg.Static.Dir, flags.static)
	set(&cfg.Output.Dir, flags.output)
	set(&cfg.Template.Name, flags.template)
	set(&cfg.Template.Assets, flags.assets)
	set(&cfg.Engine.Name, flags.engine)
	if len(positional) > 0 {
		cfg.Site.BasePath = positional[0]
	}
	set(&cfg.Site.BasePath, flags.basePath)
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.noClean {
		cfg.Output.Clean = false
	}
}

// checkDistinctDirs refuses layouts where cleaning the output would delete
// sources.
func checkDistinctDirs(cfg *config.Config) error {
	out, err := filepath.Abs(cfg.Output.Dir)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}
	for _, src := range []string{cfg.Content.Dir, cfg.Static.Dir} {
		if src == "" {
			continue
		}
		abs, err := filepath.Abs(src)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrOutputDir, err)
		}
		if abs == out || isParentDir(out, abs) {
			return fmt.Errorf("%w: output %s overlaps source %s", ErrUsage, cfg.Output.Dir, src)
		}
	}
	return nil
}

// isParentDir reports whether parent strictly contains child.
func isParentDir(parent, child string) bool {
	rel, err := filepath.Rel(parent, child)
	return err == nil && rel != "." && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

// prepareOutput cleans or creates the output directory, mirrors the static
// directory into it and provides a default stylesheet when none was copied.
func prepareOutput(cfg *config.Config, conv *mdsite.Converter, env *Environment) error {
	if cfg.Output.Clean {
		if err := fileutil.ClearDir(cfg.Output.Dir); err != nil {
			return fmt.Errorf("%w: %w", ErrOutputDir, err)
		}
	} else if err := os.MkdirAll(cfg.Output.Dir, dirPermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrOutputDir, err)
	}

	switch {
	case cfg.Static.Dir == "":
	case !fileutil.DirExists(cfg.Static.Dir):
		env.Logger.Debug("static directory missing, skipped", "dir", cfg.Static.Dir)
	default:
		n, err := fileutil.CopyTree(cfg.Static.Dir, cfg.Output.Dir)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrStaticCopy, err)
		}
		env.Logger.Debug("copied static files", "count", n, "from", cfg.Static.Dir)
	}

	cssPath := filepath.Join(cfg.Output.Dir, stylesheetName)
	if fileutil.FileExists(cssPath) {
		return nil
	}
	css, err := conv.Stylesheet(assets.DefaultStyleName)
	if err != nil {
		return err
	}
	if err := fileutil.WriteFileAtomic(cssPath, []byte(css), filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	env.Logger.Debug("wrote default stylesheet", "path", cssPath)
	return nil
}
