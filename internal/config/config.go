package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-autop/internal/assets"
	"github.com/alnah/go-autop/internal/fileutil"
	"github.com/alnah/go-autop/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound   = errors.New("config file not found")
	ErrEmptyConfigName  = errors.New("config name cannot be empty")
	ErrConfigParse      = errors.New("failed to parse config")
	ErrInvalidExtension = errors.New("invalid file extension")
	ErrInvalidWorkers   = errors.New("invalid worker count")
	ErrInvalidStyle     = errors.New("invalid style name")
)

// MaxWorkers bounds the workers field. Matches the CLI's batch limit.
const MaxWorkers = 32

// Defaults applied when a field is left empty.
const (
	DefaultInputExtension  = ".txt"
	DefaultOutputExtension = ".html"
)

// appDirName is the directory under os.UserConfigDir searched for named configs.
const appDirName = "go-autop"

// Config holds all configuration for text conversion.
type Config struct {
	Input   InputConfig  `yaml:"input"`
	Output  OutputConfig `yaml:"output"`
	Assets  AssetsConfig `yaml:"assets"`
	Format  FormatConfig `yaml:"format"`
	Workers int          `yaml:"workers"` // 0 = GOMAXPROCS
}

// InputConfig defines input source options.
type InputConfig struct {
	DefaultDir string   `yaml:"defaultDir"` // Default input directory (empty = must specify)
	Extensions []string `yaml:"extensions"` // Extensions picked up when walking a directory
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Extension  string `yaml:"extension"`  // Output file extension (default: ".html")
	Standalone bool   `yaml:"standalone"` // Wrap output in a full HTML document
	Style      string `yaml:"style"`      // Stylesheet name for standalone output (empty = default)
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// FormatConfig holds formatter options.
// LineBreaks is a pointer so an absent key keeps the formatter default.
type FormatConfig struct {
	LineBreaks *bool `yaml:"lineBreaks,omitempty"`
}

// BreaksEnabled reports the effective line-break setting.
func (f FormatConfig) BreaksEnabled() bool {
	return f.LineBreaks == nil || *f.LineBreaks
}

// Validate checks extensions, the worker count, and the style name.
// Called automatically by LoadConfig, but available for consumers
// who construct Config manually.
func (c *Config) Validate() error {
	for i, ext := range c.Input.Extensions {
		if err := fileutil.ValidateExtension(ext); err != nil {
			return fmt.Errorf("%w: input.extensions[%d]: %v", ErrInvalidExtension, i, err)
		}
	}
	if c.Output.Extension != "" {
		if err := fileutil.ValidateExtension(c.Output.Extension); err != nil {
			return fmt.Errorf("%w: output.extension: %v", ErrInvalidExtension, err)
		}
	}

	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}

	if c.Output.Style != "" {
		if err := assets.ValidateAssetName(c.Output.Style); err != nil {
			return fmt.Errorf("%w: output.style: %v", ErrInvalidStyle, err)
		}
	}

	return nil
}

// InputExtensions returns the configured extensions, or the default set.
func (c *Config) InputExtensions() []string {
	if len(c.Input.Extensions) == 0 {
		return []string{DefaultInputExtension}
	}
	return c.Input.Extensions
}

// OutputExtension returns the configured output extension, or the default.
func (c *Config) OutputExtension() string {
	if c.Output.Extension == "" {
		return DefaultOutputExtension
	}
	return c.Output.Extension
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Input:  InputConfig{Extensions: []string{DefaultInputExtension}},
		Output: OutputConfig{Extension: DefaultOutputExtension},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	cfg, _, err := LoadConfigWithPath(nameOrPath)
	return cfg, err
}

// LoadConfigWithPath behaves like LoadConfig and also returns the file
// that was read.
func LoadConfigWithPath(nameOrPath string) (*Config, string, error) {
	if nameOrPath == "" {
		return nil, "", ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		if configPath, err = resolveConfigPath(nameOrPath); err != nil {
			return nil, "", err
		}
	}

	var cfg Config
	if err := yamlutil.ReadFileStrict(configPath, &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, "", fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, "", fmt.Errorf("%w: %s: %v", ErrConfigParse, configPath, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}

	return &cfg, configPath, nil
}

// SearchPaths lists the files LoadConfig tries for a config name, in order.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-autop/
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2) // 2 locations

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, appDirName, name+ext))
		}
	}
	return paths
}

// resolveConfigPath returns the first existing file from SearchPaths.
func resolveConfigPath(name string) (string, error) {
	tried := SearchPaths(name)
	for _, p := range tried {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(tried, ", "))
}
