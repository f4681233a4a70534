package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	autop "github.com/alnah/go-autop"
	"github.com/alnah/go-autop/internal/assets"
	"github.com/alnah/go-autop/internal/config"
	"github.com/alnah/go-autop/internal/dateutil"
	"github.com/alnah/go-autop/internal/fileutil"
	"github.com/alnah/go-autop/internal/hints"
)

// stdinArg is the input argument that selects stdin.
const stdinArg = "-"

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment, log *zap.SugaredLogger) error {
	// Validate worker count early
	if err := validateWorkers(flags.workers); err != nil {
		return err
	}

	cfg, err := resolveConfig(flags, log)
	if err != nil {
		return err
	}

	inputPath, err := resolveInputPath(positionalArgs, cfg)
	if err != nil {
		return err
	}
	if flags.watch && inputPath == stdinArg {
		return fmt.Errorf("%w%s", ErrWatchStdin, hints.ForWatchStdin())
	}

	params, err := buildConversionParams(cfg, flags, env.Now())
	if err != nil {
		return err
	}

	outputDir := resolveOutputDir(flags.output, cfg)

	if inputPath == stdinArg {
		return convertStdin(ctx, flags.output, params, env, log)
	}

	files, err := discoverFiles(inputPath, outputDir, cfg.InputExtensions(), cfg.OutputExtension())
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("%w: no files with extension %s in %s",
			ErrNoInput, strings.Join(cfg.InputExtensions(), ", "), inputPath)
	}

	if flags.watch {
		if len(files) != 1 || files[0].Rel != "" {
			return fmt.Errorf("%w%s", ErrWatchStdin, hints.ForWatchStdin())
		}
		return watchFile(ctx, files[0], params, env, log)
	}

	workers := autop.ResolveWorkers(cfg.Workers)
	log.Infow("converting", "input", inputPath, "files", len(files), "workers", workers)

	results := convertBatch(ctx, files, workers, params, log)

	failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, params.dryRun, env)
	if failed > 0 {
		if len(results) == 1 {
			return results[0].Err
		}
		return fmt.Errorf("%w: %d of %d files", ErrConversionFailed, failed, len(results))
	}

	return nil
}

// resolveConfig loads the config file (flag, then AUTOP_CONFIG), applies
// environment overrides, merges CLI flags, and validates the result.
func resolveConfig(flags *convertFlags, log *zap.SugaredLogger) (*config.Config, error) {
	env := loadEnvConfig()
	warnUnknownEnvVars(log)

	name := flags.common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, path, err := config.LoadConfigWithPath(name)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) && !fileutil.IsFilePath(name) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(config.SearchPaths(name)))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		log.Infow("loaded config", "path", path)
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.noBreaks {
		off := false
		cfg.Format.LineBreaks = &off
	}
	if len(flags.extensions) > 0 {
		cfg.Input.Extensions = flags.extensions
	}
	if flags.workers > 0 {
		cfg.Workers = flags.workers
	}
	if flags.document.standalone {
		cfg.Output.Standalone = true
	}
	if flags.document.style != "" {
		cfg.Output.Style = flags.document.style
		cfg.Output.Standalone = true
	}
	if flags.document.assetPath != "" {
		cfg.Assets.BasePath = flags.document.assetPath
	}
}

// resolveInputPath picks the positional input, or the configured default.
func resolveInputPath(args []string, cfg *config.Config) (string, error) {
	switch {
	case len(args) > 1:
		return "", fmt.Errorf("%w: got %d (%s)", ErrTooManyInputs, len(args), strings.Join(args, " "))
	case len(args) == 1:
		return args[0], nil
	case cfg.Input.DefaultDir != "":
		return cfg.Input.DefaultDir, nil
	default:
		return "", fmt.Errorf("%w%s", ErrNoInput, hints.ForNoInput())
	}
}

// resolveOutputDir returns the --output flag, or the configured default.
func resolveOutputDir(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.DefaultDir
}

// buildConversionParams creates the shared formatter and, for standalone
// output, loads the stylesheet and page template through the asset resolver.
// Date placeholders in --title are expanded against now.
func buildConversionParams(cfg *config.Config, flags *convertFlags, now time.Time) (*conversionParams, error) {
	params := &conversionParams{dryRun: flags.dryRun}
	opts := []autop.Option{autop.WithLineBreaks(cfg.Format.BreaksEnabled())}

	if cfg.Output.Standalone {
		resolver, err := assets.NewAssetResolver(cfg.Assets.BasePath)
		if err != nil {
			return nil, fmt.Errorf("loading assets: %w", err)
		}

		style := cfg.Output.Style
		if style == "" {
			style = assets.DefaultStyleName
		}
		css, err := resolver.LoadStyle(style)
		if err != nil {
			if errors.Is(err, assets.ErrStyleNotFound) {
				return nil, fmt.Errorf("%w%s", err, hints.ForStyleNotFound(assets.NewEmbeddedLoader().Styles()))
			}
			return nil, err
		}

		tmpl, err := resolver.LoadTemplate(assets.DefaultTemplateName)
		if err != nil {
			return nil, err
		}
		opts = append(opts, autop.WithTemplate(tmpl))

		title, err := dateutil.Expand(flags.document.title, now)
		if err != nil {
			return nil, fmt.Errorf("%w: --title: %v", ErrInvalidFlag, err)
		}
		params.document = &autop.Document{Title: title, CSS: css}
	}

	params.formatter = autop.NewFormatter(opts...)
	return params, nil
}

// convertStdin formats stdin to stdout, or to output when set.
func convertStdin(ctx context.Context, output string, params *conversionParams, env *Environment, log *zap.SugaredLogger) error {
	content, err := io.ReadAll(env.Stdin)
	if err != nil {
		return fmt.Errorf("%w: stdin: %v", ErrReadInput, err)
	}

	out, err := params.render(ctx, string(content), "")
	if err != nil {
		return err
	}
	logStats(log, stdinArg, out)

	if params.dryRun {
		return nil
	}
	if output == "" {
		_, err := io.WriteString(env.Stdout, out)
		return err
	}
	if err := fileutil.WriteAtomic(output, out, filePermissions); err != nil {
		return fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory())
	}
	return nil
}

// titleFromPath derives a page title from an input file name.
func titleFromPath(path string) string {
	if path == "" {
		return ""
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
