package main

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	tinymd "github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/config"
)

// resolveConfig builds the effective configuration.
// Priority: CLI flags > env vars > config file > defaults.
func resolveConfig(flags *cliFlags, env *envConfig) (*config.Config, error) {
	cfg := &config.Config{}

	if name := configName(flags, env); name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(flags, cfg)
	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// configName returns the config file name or path to load, if any.
// The --config flag wins over TINYMD_CONFIG.
func configName(flags *cliFlags, env *envConfig) string {
	if flags.common.config != "" {
		return flags.common.config
	}
	return env.ConfigPath
}

// mergeFlags applies explicitly given CLI flags on top of cfg.
// --output is not merged: a .html target names a file, not a directory,
// and is resolved per run by resolveOutputTarget.
func mergeFlags(flags *cliFlags, cfg *config.Config) {
	if flags.policy.heading != "" {
		cfg.Heading.Policy = flags.policy.heading
	}
	if flags.policy.filter != "" {
		cfg.Filter.Policy = flags.policy.filter
	}
	if flags.workersSet {
		cfg.Workers = flags.workers
	}
}

// resolveOutputTarget returns the output file or directory for a run.
// Priority: --output flag > output.dir from config/env > beside the source.
func resolveOutputTarget(flagOutput string, cfg *config.Config) string {
	if flagOutput != "" {
		return flagOutput
	}
	return cfg.Output.Dir
}

// newConverter builds a converter from validated configuration.
func newConverter(cfg *config.Config, logger *slog.Logger) (*tinymd.Converter, error) {
	heading, err := tinymd.ParseHeadingPolicy(cfg.Heading.Policy)
	if err != nil {
		return nil, err
	}
	filter, err := tinymd.ParseFilterPolicy(cfg.Filter.Policy)
	if err != nil {
		return nil, err
	}
	return tinymd.NewConverter(
		tinymd.WithHeadingPolicy(heading),
		tinymd.WithFilterPolicy(filter),
		tinymd.WithLogger(logger),
	), nil
}

// runConvert discovers the files under input and converts them.
// The returned error covers setup failures only; per-file failures are
// reported in the results.
func runConvert(ctx context.Context, input, flagOutput string, cfg *config.Config, logger *slog.Logger) ([]ConversionResult, error) {
	conv, err := newConverter(cfg, logger)
	if err != nil {
		return nil, err
	}

	files, err := discoverFiles(input, resolveOutputTarget(flagOutput, cfg))
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoInput, input)
	}
	if len(files) == 1 && files[0].InputPath == input && !strings.HasSuffix(input, markdownExtension) {
		logger.Warn("input does not end in "+markdownExtension+"; output name drops its last 3 characters",
			"input", input, "output", files[0].OutputPath)
	}

	workers := resolvePoolSize(cfg.Workers)
	logger.Info("trying to parse", "input", input, "files", len(files))
	logger.Debug("worker pool", "size", workers)

	results := convertBatch(ctx, conv, files, workers)

	summary := countResults(results)
	logger.Info("parsing complete", "succeeded", summary.Succeeded, "failed", summary.Failed)
	return results, nil
}
