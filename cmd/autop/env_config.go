package main

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-autop/internal/config"
)

// envPrefix is the prefix shared by every recognized environment variable.
const envPrefix = "AUTOP_"

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath string // AUTOP_CONFIG: config file name or path
	InputDir   string // AUTOP_INPUT_DIR: default input directory
	OutputDir  string // AUTOP_OUTPUT_DIR: default output directory
	Style      string // AUTOP_STYLE: standalone stylesheet name
	LineBreaks *bool  // AUTOP_LINE_BREAKS: insert <br /> for single newlines
	Standalone *bool  // AUTOP_STANDALONE: wrap output in a full page
	Workers    int    // AUTOP_WORKERS: parallel workers
}

// knownEnvVars lists valid AUTOP_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"AUTOP_CONFIG":      true,
	"AUTOP_INPUT_DIR":   true,
	"AUTOP_OUTPUT_DIR":  true,
	"AUTOP_STYLE":       true,
	"AUTOP_LINE_BREAKS": true,
	"AUTOP_STANDALONE":  true,
	"AUTOP_WORKERS":     true,
}

// loadEnvConfig reads configuration from environment variables.
// Values that fail to parse are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("AUTOP_CONFIG"),
		InputDir:   os.Getenv("AUTOP_INPUT_DIR"),
		OutputDir:  os.Getenv("AUTOP_OUTPUT_DIR"),
		Style:      os.Getenv("AUTOP_STYLE"),
		LineBreaks: envBool("AUTOP_LINE_BREAKS"),
		Standalone: envBool("AUTOP_STANDALONE"),
	}

	if workers := os.Getenv("AUTOP_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// envBool parses a boolean variable. Unset or unparsable yields nil.
func envBool(name string) *bool {
	v := os.Getenv(name)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// warnUnknownEnvVars logs warnings for unrecognized AUTOP_* variables.
// Helps catch typos like AUTOP_WORKER instead of AUTOP_WORKERS.
func warnUnknownEnvVars(log *zap.SugaredLogger) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, envPrefix) {
			name, _, _ := strings.Cut(env, "=")
			if !knownEnvVars[name] {
				log.Warnw("unknown environment variable (typo?)", "name", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero.
// This ensures: CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags)
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.InputDir != "" && cfg.Input.DefaultDir == "" {
		cfg.Input.DefaultDir = env.InputDir
	}
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Style != "" && cfg.Output.Style == "" {
		cfg.Output.Style = env.Style
	}
	if env.Standalone != nil && !cfg.Output.Standalone {
		cfg.Output.Standalone = *env.Standalone
	}
	if env.LineBreaks != nil && cfg.Format.LineBreaks == nil {
		v := *env.LineBreaks
		cfg.Format.LineBreaks = &v
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
