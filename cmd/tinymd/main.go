package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-tinymd/internal/config"
	"github.com/alnah/go-tinymd/internal/yamlutil"
)

// Version is set at build time via ldflags.
var Version = "dev"

func main() {
	// Parse flags first to know whether maxprocs should log.
	verbose := false
	if flags, _, err := parseFlags(os.Args[1:]); err == nil {
		verbose = flags.common.verbose
	}
	configureMaxProcs(verbose, os.Stderr)

	ctx, stop := notifyContext(context.Background())
	code := run(ctx, os.Args[1:], DefaultEnv())
	stop()
	os.Exit(code)
}

// run executes one invocation and returns the process exit code.
func run(ctx context.Context, args []string, env *Environment) int {
	flags, positional, err := parseFlags(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printLongBanner(env.Stdout)
			return ExitSuccess
		}
		fmt.Fprintf(env.Stderr, "[ Error ] %v\n\n", err)
		printLongBanner(env.Stderr)
		return ExitUsage
	}

	if flags.info.version {
		printShortBanner(env.Stdout)
		return ExitSuccess
	}

	logger := newLogger(env.Stderr, flags.common.quiet, flags.common.verbose)
	warnUnknownEnvVars(logger)

	if !flags.info.printConfig && len(positional) != 1 {
		fmt.Fprintln(env.Stdout, invalidInvocation)
		printLongBanner(env.Stdout)
		return ExitUsage
	}

	envCfg := loadEnvConfig()
	cfg, err := resolveConfig(flags, envCfg)
	if err != nil {
		hint := hintFor(err)
		if errors.Is(err, config.ErrConfigNotFound) {
			hint = configNotFoundHint(configName(flags, envCfg))
		}
		fmt.Fprintf(env.Stderr, "[ Error ] %v%s\n", err, hint)
		return exitCodeFor(err)
	}

	if flags.info.printConfig {
		data, err := yamlutil.Encode(cfg)
		if err != nil {
			fmt.Fprintf(env.Stderr, "[ Error ] %v\n", err)
			return ExitGeneral
		}
		_, _ = env.Stdout.Write(data)
		return ExitSuccess
	}

	if !flags.common.quiet {
		printShortBanner(env.Stdout)
	}

	results, err := runConvert(ctx, positional[0], flags.output, cfg, logger)
	if err != nil {
		fmt.Fprintf(env.Stderr, "[ Error ] %v%s\n", err, hintFor(err))
		return exitCodeFor(err)
	}

	if failed := printResultsWithWriter(results, flags.common.quiet, flags.common.verbose, env); failed > 0 {
		return exitCodeFor(firstError(results))
	}
	return ExitSuccess
}
