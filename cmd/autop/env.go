package main

import (
	"io"
	"os"
	"time"

	"go.uber.org/zap"
)

// defaultWatchInterval is how often --watch polls the input file.
const defaultWatchInterval = time.Second

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger overrides the logger built from --verbose/--debug when set.
	Logger *zap.SugaredLogger

	WatchInterval time.Duration
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:           time.Now,
		Stdin:         os.Stdin,
		Stdout:        os.Stdout,
		Stderr:        os.Stderr,
		WatchInterval: defaultWatchInterval,
	}
}
