package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  build      Generate the site from Markdown pages")
	fmt.Fprintln(w, "  init       Write a default mdsite.yaml")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'mdsite help <command>' for details on a specific command.")
}

// printBuildUsage prints usage for the build command.
func printBuildUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite build [base-path] [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert every Markdown page under the content directory into an HTML")
	fmt.Fprintln(w, "page in the output directory, after copying the static directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  base-path    Prefix for root-relative links, e.g. /repo/ (default \"/\")")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "      --content <dir>       Markdown pages (default \"content\")")
	fmt.Fprintln(w, "      --static <dir>        Files copied verbatim (default \"static\")")
	fmt.Fprintln(w, "  -o, --output <dir>        Output directory (default \"docs\")")
	fmt.Fprintln(w, "      --no-clean            Keep existing files in the output directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path (default \"mdsite\" if present)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "  -t, --template <s>        Template name or file path (default \"default\")")
	fmt.Fprintln(w, "      --asset-path <dir>    Directory with templates/ and styles/ overrides")
	fmt.Fprintln(w, "      --base-path <s>       Same as the base-path argument")
	fmt.Fprintln(w, "  -e, --engine <s>          Markdown engine: native, goldmark (default \"native\")")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --timeout <d>         Per-page timeout (default 30s)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDSITE_CONFIG, MDSITE_CONTENT_DIR, MDSITE_STATIC_DIR, MDSITE_OUTPUT_DIR,")
	fmt.Fprintln(w, "  MDSITE_BASE_PATH, MDSITE_TEMPLATE, MDSITE_ASSET_PATH, MDSITE_ENGINE,")
	fmt.Fprintln(w, "  MDSITE_TIMEOUT, MDSITE_WORKERS")
}

// printInitUsage prints usage for the init command.
func printInitUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdsite init [path] [--force]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Write the default configuration to path (default \"mdsite.yaml\").")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "build":
		printBuildUsage(env.Stdout)
	case "init":
		printInitUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: mdsite version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: mdsite help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
