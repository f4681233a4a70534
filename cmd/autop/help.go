package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autop [convert] [flags] <input|->")
	fmt.Fprintln(w, "       autop <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert     Convert plain text files to paragraphed HTML (default)")
	fmt.Fprintln(w, "  config      Print the effective configuration as YAML")
	fmt.Fprintln(w, "  completion  Generate shell completion script")
	fmt.Fprintln(w, "  version     Show version information")
	fmt.Fprintln(w, "  help        Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'autop help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autop convert <input|-> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Wrap blank-line separated text in <p> tags and turn single newlines into <br />.")
	fmt.Fprintln(w, "HTML in the input is kept; <pre> blocks are copied verbatim.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    File, directory, or - for stdin (optional if config has input.defaultDir)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file or directory (stdin input: file, default stdout)")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "  -e, --ext <ext>           Extensions picked up in directories (default: .txt)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Formatting:")
	fmt.Fprintln(w, "      --no-breaks           Keep single newlines instead of inserting <br />")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Standalone Pages:")
	fmt.Fprintln(w, "      --standalone          Wrap output in a complete HTML page")
	fmt.Fprintln(w, "      --style <name>        Stylesheet name (implies --standalone)")
	fmt.Fprintln(w, "      --assets <dir>        Custom asset directory (styles/, templates/)")
	fmt.Fprintln(w, "      --title <s>           Page title, {date:FORMAT} expands (\"\" = input file name)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Modes:")
	fmt.Fprintln(w, "      --watch               Reconvert a single file whenever it changes")
	fmt.Fprintln(w, "  -n, --dry-run             Convert without writing files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show detailed timing")
	fmt.Fprintln(w, "      --debug               Show debug logs")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  AUTOP_CONFIG, AUTOP_INPUT_DIR, AUTOP_OUTPUT_DIR, AUTOP_STYLE,")
	fmt.Fprintln(w, "  AUTOP_LINE_BREAKS, AUTOP_STANDALONE, AUTOP_WORKERS")
}

// printConfigUsage prints usage for the config command.
func printConfigUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: autop config [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Print the configuration convert would use, after merging the config")
	fmt.Fprintln(w, "file, AUTOP_* environment variables, and flags. Accepts convert flags.")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) error {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return nil
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "completion":
		printCompletionUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: autop version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: autop help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		printUsage(env.Stderr)
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
	return nil
}
