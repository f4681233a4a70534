package main

// Notes:
// - This file contains test helpers and type aliases used across cmd tests.
// No coverage gaps: this is test infrastructure, not production code.

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/alnah/go-autop/internal/config"
)

// Type aliases for cleaner test code.
type (
	Config       = config.Config
	InputConfig  = config.InputConfig
	OutputConfig = config.OutputConfig
)

// testEnv bundles an Environment with its captured output and logs.
type testEnv struct {
	*Environment
	stdout *bytes.Buffer
	stderr *bytes.Buffer
	logs   *observer.ObservedLogs
}

// newTestEnv returns an Environment writing to buffers, reading stdin from
// the given string, and logging to an observer at debug level.
func newTestEnv(stdin string) *testEnv {
	core, logs := observer.New(zapcore.DebugLevel)
	te := &testEnv{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
		logs:   logs,
	}
	te.Environment = &Environment{
		Now:           func() time.Time { return time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC) },
		Stdin:         strings.NewReader(stdin),
		Stdout:        te.stdout,
		Stderr:        te.stderr,
		Logger:        zap.New(core).Sugar(),
		WatchInterval: 10 * time.Millisecond,
	}
	return te
}

// writeFile creates dir/name with content, making parent directories.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("setup mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("setup write: %v", err)
	}
	return path
}

// readFile returns the content of path or fails the test.
func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	return string(data)
}

// sampleText is a two paragraph input and sampleHTML its formatted output.
const (
	sampleText = "Hello\nworld\n\nSecond"
	sampleHTML = "<p>Hello<br />\nworld</p>\n<p>Second</p>\n"
)
