package main

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	autop "github.com/alnah/go-autop"
	"github.com/alnah/go-autop/internal/hints"
)

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
	Rel        string // path relative to the walked directory; empty for a single file
}

// discoverFiles finds the files to convert under inputPath.
// A single file is converted whatever its extension. A directory is walked
// and files whose extension is in inExts are picked up.
func discoverFiles(inputPath, outputDir string, inExts []string, outExt string) ([]FileToConvert, error) {
	info, err := os.Stat(inputPath)
	if err != nil {
		return nil, err
	}

	if !info.IsDir() {
		outPath := resolveOutputPath(inputPath, outputDir, "", outExt)
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	var files []FileToConvert
	err = filepath.WalkDir(inputPath, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("scanning %s: %w", path, err)
		}
		if d.IsDir() || !hasExtension(path, inExts) {
			return nil
		}
		rel, relErr := filepath.Rel(inputPath, path)
		if relErr != nil {
			rel = filepath.Base(path)
		}
		outPath := resolveOutputPath(path, outputDir, inputPath, outExt)
		files = append(files, FileToConvert{InputPath: path, OutputPath: outPath, Rel: rel})
		return nil
	})

	return files, err
}

// resolveOutputPath determines the output path for an input file.
// With no outputDir the output sits next to the input. An outputDir ending
// in outExt names the output file for a single input. Files found under
// baseInputDir keep their relative layout.
func resolveOutputPath(inputPath, outputDir, baseInputDir, outExt string) string {
	ext := filepath.Ext(inputPath)
	base := strings.TrimSuffix(filepath.Base(inputPath), ext)

	if outputDir == "" {
		return filepath.Join(filepath.Dir(inputPath), base+outExt)
	}

	if baseInputDir == "" && strings.HasSuffix(outputDir, outExt) {
		return outputDir
	}

	if baseInputDir != "" {
		relPath, err := filepath.Rel(baseInputDir, inputPath)
		if err == nil {
			relDir := filepath.Dir(relPath)
			return filepath.Join(outputDir, relDir, base+outExt)
		}
	}

	return filepath.Join(outputDir, base+outExt)
}

// hasExtension reports whether path ends in one of exts.
func hasExtension(path string, exts []string) bool {
	return slices.Contains(exts, filepath.Ext(path))
}

// validateWorkers checks that the worker count is within valid bounds.
func validateWorkers(n int) error {
	if n < 0 {
		return fmt.Errorf("%w: %d (must be >= 0, 0 means auto)%s", ErrInvalidWorkerCount, n, hints.ForWorkers(autop.MaxWorkers))
	}
	if n > autop.MaxWorkers {
		return fmt.Errorf("%w: %d (maximum is %d)%s", ErrInvalidWorkerCount, n, autop.MaxWorkers, hints.ForWorkers(autop.MaxWorkers))
	}
	return nil
}
