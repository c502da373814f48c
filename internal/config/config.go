package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/pipeline"
	"github.com/alnah/go-tinymd/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidWorkers  = errors.New("invalid worker count")
)

// Limits on configuration values.
const (
	MaxPathLength = 4096 // PATH_MAX on Linux
	MaxWorkers    = 32
)

// userConfigDirName is the directory searched under os.UserConfigDir.
const userConfigDirName = "go-tinymd"

// Config holds all configuration for a conversion run.
type Config struct {
	Output  OutputConfig  `yaml:"output"`
	Heading HeadingConfig `yaml:"heading"`
	Filter  FilterConfig  `yaml:"filter"`
	Workers int           `yaml:"workers"` // 0 = auto
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	Dir string `yaml:"dir"` // Empty = beside the source file
}

// HeadingConfig defines how unsliceable heading lines are handled.
type HeadingConfig struct {
	Policy string `yaml:"policy"` // "strict" (default) or "clamp"
}

// FilterConfig defines which fragments are dropped from the output.
type FilterConfig struct {
	Policy string `yaml:"policy"` // "literal" (default), "semantic" or "none"
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills unset policies with their canonical default names.
// Empty fields are left alone until all sources (file, env, flags) are merged,
// so that a lower-priority source can still fill them.
func (c *Config) ApplyDefaults() {
	if c.Heading.Policy == "" {
		c.Heading.Policy = pipeline.HeadingStrictName
	}
	if c.Filter.Policy == "" {
		c.Filter.Policy = pipeline.FilterLiteralName
	}
}

// Validate checks policies, limits, and field lengths.
// Called automatically by LoadConfig, and again by the CLI after env vars
// and flags are merged.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.dir", c.Output.Dir, MaxPathLength); err != nil {
		return err
	}
	if _, err := pipeline.ParseHeadingPolicy(c.Heading.Policy); err != nil {
		return fmt.Errorf("heading.policy: %w", err)
	}
	if _, err := pipeline.ParseFilterPolicy(c.Filter.Policy); err != nil {
		return fmt.Errorf("filter.policy: %w", err)
	}
	if c.Workers < 0 || c.Workers > MaxWorkers {
		return fmt.Errorf("%w: workers must be between 0 and %d, got %d", ErrInvalidWorkers, MaxWorkers, c.Workers)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// LoadConfig loads configuration from a file path or config name.
// Fields absent from the file stay empty; call ApplyDefaults once every
// source has been merged.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	configPath := nameOrPath
	if !fileutil.IsFilePath(nameOrPath) {
		var err error
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.Decode(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths lists where a config name is looked up, in order.
// Tries extensions .yaml then .yml, in the current directory first and
// then in the user config directory.
func SearchPaths(name string) []string {
	extensions := []string{".yaml", ".yml"}
	paths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		paths = append(paths, name+ext)
	}

	if userConfigDir, err := os.UserConfigDir(); err == nil {
		for _, ext := range extensions {
			paths = append(paths, filepath.Join(userConfigDir, userConfigDirName, name+ext))
		}
	}

	return paths
}

// resolveConfigPath returns the first existing entry of SearchPaths.
func resolveConfigPath(name string) (string, error) {
	paths := SearchPaths(name)
	for _, p := range paths {
		if fileutil.FileExists(p) {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(paths, ", "))
}
