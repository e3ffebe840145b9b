package main

import (
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-mdsite/internal/config"
	"github.com/alnah/go-mdsite/internal/fileutil"
)

// runInit writes a config file holding the default settings.
func runInit(args []string, env *Environment) error {
	fs := flag.NewFlagSet("init", flag.ContinueOnError)
	fs.SetOutput(env.Stderr)
	fs.Usage = func() { printInitUsage(env.Stderr) }
	force := fs.BoolP("force", "f", false, "overwrite an existing file")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrUsage, err)
	}

	path := config.DefaultName + ".yaml"
	switch fs.NArg() {
	case 0:
	case 1:
		path = fs.Arg(0)
	default:
		return fmt.Errorf("%w: init takes at most one path", ErrUsage)
	}

	if !*force && fileutil.FileExists(path) {
		return fmt.Errorf("%w: %s (use --force)", ErrConfigExists, path)
	}

	data, err := config.DefaultConfig().Encode()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", path)
	return nil
}
