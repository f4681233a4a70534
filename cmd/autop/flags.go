package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
	debug   bool
}

// documentFlags holds standalone page flags.
type documentFlags struct {
	standalone bool
	style      string // Stylesheet name
	assetPath  string // Override asset directory
	title      string // Page title ("" = input file name)
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common     commonFlags
	output     string
	workers    int
	noBreaks   bool
	extensions []string
	watch      bool
	dryRun     bool
	document   documentFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
	fs.BoolVar(&f.debug, "debug", false, "show debug logs")
}

// addDocumentFlags adds standalone page flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.BoolVar(&f.standalone, "standalone", false, "wrap output in a complete HTML page")
	fs.StringVar(&f.style, "style", "", "stylesheet name for standalone pages")
	fs.StringVar(&f.assetPath, "assets", "", "custom asset directory")
	fs.StringVar(&f.title, "title", "", "page title, {date} or {date:FORMAT} expand (\"\" = input file name)")
}

// newConvertFlagSet registers every convert flag on a new FlagSet bound to f.
// Shared by parseConvertFlags and shell completion.
func newConvertFlagSet(f *convertFlags) *flag.FlagSet {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)

	// I/O flags
	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.StringSliceVarP(&f.extensions, "ext", "e", nil, "input extensions to convert in directories (repeatable)")

	// Formatting
	fs.BoolVar(&f.noBreaks, "no-breaks", false, "keep single newlines instead of inserting <br />")
	addDocumentFlags(fs, &f.document)

	// Modes
	fs.BoolVar(&f.watch, "watch", false, "reconvert the input file when it changes")
	fs.BoolVarP(&f.dryRun, "dry-run", "n", false, "convert without writing files")

	addCommonFlags(fs, &f.common)
	return fs
}

// parseConvertFlags parses convert command flags and returns positional args.
// Parse errors are wrapped with ErrInvalidFlag. --help prints usage and
// returns flag.ErrHelp.
func parseConvertFlags(args []string, usage io.Writer) (*convertFlags, []string, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConvertUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, nil, err
		}
		return nil, nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}

	return f, fs.Args(), nil
}

// parseConfigFlags parses flags for the config command.
func parseConfigFlags(args []string, usage io.Writer) (*convertFlags, error) {
	f := &convertFlags{}
	fs := newConvertFlagSet(f)
	fs.SetOutput(io.Discard)
	fs.Usage = func() { printConfigUsage(usage) }

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidFlag, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: config takes no arguments, got %q", ErrInvalidFlag, fs.Args())
	}
	return f, nil
}
