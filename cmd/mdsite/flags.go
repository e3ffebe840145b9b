package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// buildFlags holds all flags for the build command.
type buildFlags struct {
	common   commonFlags
	content  string
	static   string
	output   string
	template string
	assets   string
	basePath string
	engine   string
	workers  int
	timeout  time.Duration
	noClean  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing and debug logs")
}

// newBuildFlagSet registers the build flags on a fresh FlagSet.
func newBuildFlagSet(f *buildFlags, usage io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("build", flag.ContinueOnError)
	fs.SetOutput(usage)
	fs.Usage = func() { printBuildUsage(usage) }

	addCommonFlags(fs, &f.common)
	fs.StringVar(&f.content, "content", "", "directory of Markdown pages")
	fs.StringVar(&f.static, "static", "", "directory copied verbatim into the output")
	fs.StringVarP(&f.output, "output", "o", "", "output directory")
	fs.StringVarP(&f.template, "template", "t", "", "template name or file path")
	fs.StringVar(&f.assets, "asset-path", "", "directory searched for templates/ and styles/ before the built-ins")
	fs.StringVar(&f.basePath, "base-path", "", "prefix for root-relative links (e.g. /blog/)")
	fs.StringVarP(&f.engine, "engine", "e", "", "markdown engine: native, goldmark")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.DurationVar(&f.timeout, "timeout", 0, "per-page timeout (e.g. 10s)")
	fs.BoolVar(&f.noClean, "no-clean", false, "keep existing files in the output directory")
	return fs
}

// parseBuildFlags parses build flags and returns positional args.
// The first positional argument, if any, is the base path.
func parseBuildFlags(args []string, usage io.Writer) (*buildFlags, []string, error) {
	f := &buildFlags{}
	fs := newBuildFlagSet(f, usage)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrUsage, err)
	}

	positional := fs.Args()
	if len(positional) > 1 {
		return nil, nil, fmt.Errorf("%w: unexpected arguments %q", ErrUsage, positional[1:])
	}
	if f.timeout < 0 {
		return nil, nil, fmt.Errorf("%w: --timeout must be positive", ErrUsage)
	}
	if f.common.quiet && f.common.verbose {
		return nil, nil, fmt.Errorf("%w: --quiet and --verbose are mutually exclusive", ErrUsage)
	}
	return f, positional, nil
}
