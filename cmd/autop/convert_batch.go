package main

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	autop "github.com/alnah/go-autop"
	"github.com/alnah/go-autop/internal/fileutil"
	"github.com/alnah/go-autop/internal/hints"
	"github.com/alnah/go-autop/internal/pipeline"
)

// filePermissions is rw-r--r--: owner read+write, others read.
const filePermissions = 0o644

// conversionParams groups parameters shared across batch/file conversion.
type conversionParams struct {
	formatter *autop.Formatter
	document  *autop.Document // nil = write fragments
	dryRun    bool
}

// render formats content. Standalone pages without an explicit title are
// titled after the input file.
func (p *conversionParams) render(ctx context.Context, content, inputPath string) (string, error) {
	if p.document == nil {
		return p.formatter.Convert(ctx, content)
	}
	doc := *p.document
	if doc.Title == "" {
		doc.Title = titleFromPath(inputPath)
	}
	return p.formatter.Render(ctx, content, &doc)
}

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Err        error
	Duration   time.Duration
}

// convertBatch processes files concurrently. Workers share one formatter
// and pull file indexes from a jobs channel.
func convertBatch(ctx context.Context, files []FileToConvert, workers int, params *conversionParams, log *zap.SugaredLogger) []ConversionResult {
	if len(files) == 0 {
		return nil
	}

	concurrency := min(workers, len(files))

	results := make([]ConversionResult, len(files))
	var wg sync.WaitGroup
	jobs := make(chan int, len(files))

	for range concurrency {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for idx := range jobs {
				if ctx.Err() != nil {
					results[idx] = ConversionResult{
						InputPath: files[idx].InputPath,
						Err:       ctx.Err(),
					}
					continue
				}
				results[idx] = convertFile(ctx, files[idx], params, log)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)

	wg.Wait()
	return results
}

// convertFile processes a single file and returns the result.
func convertFile(ctx context.Context, f FileToConvert, params *conversionParams, log *zap.SugaredLogger) ConversionResult {
	start := time.Now()
	result := ConversionResult{
		InputPath:  f.InputPath,
		OutputPath: f.OutputPath,
	}
	fail := func(err error) ConversionResult {
		result.Err = err
		result.Duration = time.Since(start)
		log.Debugw("conversion failed", "input", f.InputPath, "err", err)
		return result
	}

	if fileutil.SamePath(f.InputPath, f.OutputPath) {
		return fail(fmt.Errorf("%w: %s%s", ErrOutputIsInput, f.OutputPath, hints.ForSameOutput()))
	}

	content, err := os.ReadFile(f.InputPath) // #nosec G304 -- discovered path
	if err != nil {
		return fail(fmt.Errorf("%w: %v", ErrReadInput, err))
	}

	out, err := params.render(ctx, string(content), f.InputPath)
	if err != nil {
		return fail(err)
	}
	logStats(log, f.InputPath, out)

	if !params.dryRun {
		if err := fileutil.WriteAtomic(f.OutputPath, out, filePermissions); err != nil {
			return fail(fmt.Errorf("%w: %v%s", ErrWriteOutput, err, hints.ForOutputDirectory()))
		}
	}

	result.Duration = time.Since(start)
	log.Debugw("converted", "input", f.InputPath, "output", f.OutputPath,
		"bytes", len(out), "duration", result.Duration)
	return result
}

// logStats inspects formatted output and logs its structure at info level.
// Unbalanced markup is reported as a warning. Inspection is skipped when
// info logging is off.
func logStats(log *zap.SugaredLogger, name, out string) {
	if !log.Desugar().Core().Enabled(zapcore.InfoLevel) {
		return
	}

	stats, err := pipeline.Inspect(out)
	if err != nil {
		log.Warnw("inspecting output", "input", name, "err", err)
		return
	}
	log.Infow("output structure", "input", name,
		"paragraphs", stats.Paragraphs, "breaks", stats.LineBreaks, "pre", stats.PreBlocks)
	if !stats.Balanced() {
		log.Warnw("unbalanced tags in output", "input", name, "tags", stats.Unbalanced)
	}
}

// ResultSummary holds the count of succeeded and failed conversions.
type ResultSummary struct {
	Succeeded int
	Failed    int
}

// countResults tallies succeeded and failed conversions.
func countResults(results []ConversionResult) ResultSummary {
	var summary ResultSummary
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
		} else {
			summary.Succeeded++
		}
	}
	return summary
}

// printResultsWithWriter outputs conversion results using the provided writers
// and returns the failure count. A lone failure is left for the caller to
// report so it keeps its hint and exit code.
func printResultsWithWriter(results []ConversionResult, quiet, verbose, dryRun bool, env *Environment) int {
	summary := countResults(results)

	verb := "Created"
	if dryRun {
		verb = "Would create"
	}

	for _, r := range results {
		if r.Err != nil {
			if len(results) > 1 {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			}
			continue
		}

		if quiet {
			continue
		}

		if verbose {
			fmt.Fprintf(env.Stdout, "%s -> %s (%v)\n", r.InputPath, r.OutputPath, r.Duration.Round(time.Millisecond))
		} else {
			fmt.Fprintf(env.Stdout, "%s %s\n", verb, r.OutputPath)
		}
	}

	if !quiet && len(results) > 1 {
		fmt.Fprintf(env.Stdout, "\n%d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	}

	return summary.Failed
}
