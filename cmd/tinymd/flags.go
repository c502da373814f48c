package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags that shape logging and configuration lookup.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// policyFlags holds transducer policy overrides.
type policyFlags struct {
	heading string
	filter  string
}

// infoFlags holds flags that print information instead of converting.
type infoFlags struct {
	version     bool
	printConfig bool
}

// cliFlags holds every flag accepted by tinymd.
type cliFlags struct {
	common     commonFlags
	output     string
	workers    int
	workersSet bool // --workers given explicitly, including 0
	policy     policyFlags
	info       infoFlags
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs and timing")
}

// addPolicyFlags adds transducer policy flags to a FlagSet.
func addPolicyFlags(fs *flag.FlagSet, f *policyFlags) {
	fs.StringVar(&f.heading, "heading", "", "heading policy: strict, clamp")
	fs.StringVar(&f.filter, "filter", "", "fragment filter: literal, semantic, none")
}

// addInfoFlags adds informational flags to a FlagSet.
func addInfoFlags(fs *flag.FlagSet, f *infoFlags) {
	fs.BoolVar(&f.version, "version", false, "print version and exit")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective configuration as YAML and exit")
}

// parseFlags parses args (without the program name) and returns the flags
// and the remaining positional arguments.
// Returns flag.ErrHelp when -h or --help is given.
func parseFlags(args []string) (*cliFlags, []string, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("tinymd", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fs.Usage = func() {}

	addCommonFlags(fs, &f.common)
	fs.StringVarP(&f.output, "output", "o", "", "output file (.html) or directory")
	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	addPolicyFlags(fs, &f.policy)
	addInfoFlags(fs, &f.info)

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	f.workersSet = fs.Changed("workers")

	return f, fs.Args(), nil
}
