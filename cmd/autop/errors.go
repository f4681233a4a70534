package main

import "errors"

// Sentinel errors for CLI operations.
var (
	ErrNoInput            = errors.New("no input specified")
	ErrTooManyInputs      = errors.New("expected a single input")
	ErrReadInput          = errors.New("failed to read input")
	ErrWriteOutput        = errors.New("failed to write output")
	ErrOutputIsInput      = errors.New("output path is the input path")
	ErrInvalidWorkerCount = errors.New("invalid worker count")
	ErrWatchStdin         = errors.New("--watch requires a single input file")
	ErrUnknownCommand     = errors.New("unknown command")
	ErrInvalidFlag        = errors.New("invalid flag")
	ErrConversionFailed   = errors.New("conversion failed")
)
