package main

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-autop/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML: defaults, then
// the config file, environment, and flags, in increasing precedence.
func runConfigCmd(args []string, env *Environment) error {
	flags, err := parseConfigFlags(args, env.Stdout)
	if err != nil {
		return err
	}

	log := env.Logger
	if log == nil {
		log = zap.NewNop().Sugar()
		if flags.common.verbose || flags.common.debug {
			log = newLogger(env.Stderr, flags.common)
		}
	}

	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, log)
	if err != nil {
		return err
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	_, err = env.Stdout.Write(data)
	return err
}
