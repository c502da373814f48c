package main

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/alnah/go-tinymd/internal/config"
)

// envPrefix marks environment variables read by tinymd.
const envPrefix = "TINYMD_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string // TINYMD_CONFIG: config file name or path
	OutputDir  string // TINYMD_OUTPUT_DIR: output directory
	Heading    string // TINYMD_HEADING: heading policy
	Filter     string // TINYMD_FILTER: filter policy
	Workers    int    // TINYMD_WORKERS: parallel workers
}

// knownEnvVars lists valid TINYMD_* environment variables.
var knownEnvVars = map[string]bool{
	"TINYMD_CONFIG":     true,
	"TINYMD_OUTPUT_DIR": true,
	"TINYMD_HEADING":    true,
	"TINYMD_FILTER":     true,
	"TINYMD_WORKERS":    true,
}

// loadEnvConfig reads configuration from environment variables.
// Malformed or non-positive TINYMD_WORKERS values are ignored.
func loadEnvConfig() *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("TINYMD_CONFIG"),
		OutputDir:  os.Getenv("TINYMD_OUTPUT_DIR"),
		Heading:    os.Getenv("TINYMD_HEADING"),
		Filter:     os.Getenv("TINYMD_FILTER"),
	}

	if workers := os.Getenv("TINYMD_WORKERS"); workers != "" {
		if w, err := strconv.Atoi(workers); err == nil && w > 0 {
			cfg.Workers = w
		}
	}

	return cfg
}

// warnUnknownEnvVars logs a warning for each unrecognized TINYMD_* variable.
func warnUnknownEnvVars(logger *slog.Logger) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			logger.Warn("unknown environment variable (typo?)", "name", name)
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values if the env var is set AND the config value is empty/zero,
// so that CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.Dir == "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Heading != "" && cfg.Heading.Policy == "" {
		cfg.Heading.Policy = env.Heading
	}
	if env.Filter != "" && cfg.Filter.Policy == "" {
		cfg.Filter.Policy = env.Filter
	}
	if env.Workers > 0 && cfg.Workers == 0 {
		cfg.Workers = env.Workers
	}
}
