package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	flag "github.com/spf13/pflag"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/alnah/go-autop/internal/fileutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	os.Exit(runMain(os.Args, DefaultEnv()))
}

// commands lists the subcommand names runMain dispatches on.
var commands = map[string]bool{
	"convert":    true,
	"config":     true,
	"version":    true,
	"help":       true,
	"completion": true,
}

// isCommand reports whether s names a subcommand. Matching is case sensitive.
func isCommand(s string) bool {
	return commands[s]
}

// looksLikeInput reports whether a first argument that is not a command
// should be read as the convert command's input: a flag, stdin, or a path.
func looksLikeInput(s string) bool {
	if s == "-" || (len(s) > 1 && s[0] == '-') {
		return true
	}
	return fileutil.IsFilePath(s) || filepath.Ext(s) != "" ||
		fileutil.FileExists(s) || fileutil.DirExists(s)
}

// runMain dispatches args to a command and returns the process exit code.
func runMain(args []string, env *Environment) int {
	if len(args) < 2 {
		printUsage(env.Stderr)
		return ExitUsage
	}

	cmd, rest := args[1], args[2:]
	if !isCommand(cmd) {
		if !looksLikeInput(cmd) {
			fmt.Fprintf(env.Stderr, "error: %v: %s\n", ErrUnknownCommand, cmd)
			printUsage(env.Stderr)
			return ExitUsage
		}
		cmd, rest = "convert", args[1:]
	}

	var err error
	switch cmd {
	case "convert":
		err = runConvertCmd(rest, env)
	case "config":
		err = runConfigCmd(rest, env)
	case "version":
		fmt.Fprintf(env.Stdout, "autop %s\n", Version)
	case "help":
		err = runHelp(rest, env)
	case "completion":
		err = runCompletion(rest, env)
	}

	if errors.Is(err, flag.ErrHelp) {
		return ExitSuccess
	}
	if err != nil {
		fmt.Fprintf(env.Stderr, "error: %v\n", err)
	}
	return exitCodeFor(err)
}

// runConvertCmd parses convert flags, sets up logging and signals, then
// runs the conversion.
func runConvertCmd(args []string, env *Environment) error {
	flags, positional, err := parseConvertFlags(args, env.Stderr)
	if err != nil {
		return err
	}

	log := env.Logger
	if log == nil {
		log = newLogger(env.Stderr, flags.common)
		defer func() { _ = log.Sync() }()
	}

	// maxprocs.Set only fails on an invalid GOMAXPROCS value, in which case
	// the runtime default stays in place.
	undo, err := maxprocs.Set(maxprocs.Logger(log.Infof))
	if err != nil {
		log.Warnw("automaxprocs", "err", err)
	}
	defer undo()

	ctx, stop := notifyContext(context.Background())
	defer stop()

	return runConvert(ctx, positional, flags, env, log)
}
