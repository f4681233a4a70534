package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
)

// watchFile converts f, then polls its modification time every
// env.WatchInterval and reconverts whenever it moves forward. Conversion
// failures are reported and watching continues. Returns nil once ctx is
// canceled, or an error if the input disappears.
func watchFile(ctx context.Context, f FileToConvert, params *conversionParams, env *Environment, log *zap.SugaredLogger) error {
	interval := env.WatchInterval
	if interval <= 0 {
		interval = defaultWatchInterval
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Infow("watching", "input", f.InputPath, "interval", interval)

	var lastMod time.Time
	for {
		info, err := os.Stat(f.InputPath)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrReadInput, err)
		}

		if modTime := info.ModTime(); lastMod.Before(modTime) {
			lastMod = modTime
			r := convertFile(ctx, f, params, log)
			if r.Err != nil {
				fmt.Fprintf(env.Stderr, "FAILED %s: %v\n", r.InputPath, r.Err)
			} else {
				fmt.Fprintf(env.Stdout, "%s Created %s\n", env.Now().Format(time.TimeOnly), r.OutputPath)
			}
		}

		select {
		case <-ctx.Done():
			log.Infow("watch stopped", "input", f.InputPath)
			return nil
		case <-ticker.C:
		}
	}
}
