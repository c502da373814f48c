package main

import (
	"fmt"
	"io"
	"strings"
)

const (
	appName        = "tinymd"
	appDescription = "a tiny markdown to HTML converter"
	appAuthor      = "alnah"
	appHomepage    = "https://github.com/alnah/go-tinymd"
)

// invalidInvocation is printed before the long banner when the positional
// argument count is wrong.
const invalidInvocation = "[ Error ] Invalid invocation (ya dun goofed!)"

// title returns the one-line program title.
func title() string {
	return fmt.Sprintf("%s (v%s), %s", appName, strings.TrimPrefix(Version, "v"), appDescription)
}

// printShortBanner prints the title line.
func printShortBanner(w io.Writer) {
	fmt.Fprintln(w, title())
}

// printLongBanner prints the title, credits, and usage.
func printLongBanner(w io.Writer) {
	printShortBanner(w)
	fmt.Fprintf(w, "Written by: %s\n", appAuthor)
	fmt.Fprintf(w, "Homepage: %s\n", appHomepage)
	fmt.Fprintf(w, "Usage: %s <somefile.md>\n", appName)
	fmt.Fprintln(w)
	printUsage(w)
}

// printUsage prints arguments and flags.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file, or a directory to convert every *.md in it")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>       Output file (.html) or directory")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rendering:")
	fmt.Fprintln(w, "      --heading <s>         Heading policy: strict, clamp")
	fmt.Fprintln(w, "      --filter <s>          Fragment filter: literal, semantic, none")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs and timing")
	fmt.Fprintln(w, "      --print-config        Print the effective configuration and exit")
	fmt.Fprintln(w, "      --version             Print version and exit")
	fmt.Fprintln(w, "  -h, --help                Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  TINYMD_CONFIG, TINYMD_OUTPUT_DIR, TINYMD_HEADING, TINYMD_FILTER, TINYMD_WORKERS")
}
