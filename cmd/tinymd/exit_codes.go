package main

import (
	"context"
	"errors"
	"os"

	tinymd "github.com/alnah/go-tinymd"
	"github.com/alnah/go-tinymd/internal/config"
	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/hints"
	"github.com/alnah/go-tinymd/internal/pipeline"
)

// Exit codes for the tinymd CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess = 0 // Successful conversion
	ExitGeneral = 1 // General/unexpected error
	ExitUsage   = 2 // Invalid invocation, flags, or config
	ExitIO      = 3 // Input unreadable, output unwritable
	ExitContent = 4 // Input content the transducer rejects
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Content errors (exit 4)
	if errors.Is(err, tinymd.ErrHeadingTooShort) ||
		errors.Is(err, tinymd.ErrLineDecode) {
		return ExitContent
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, tinymd.ErrReadInput) ||
		errors.Is(err, tinymd.ErrWriteOutput) ||
		errors.Is(err, tinymd.ErrInvalidInputName) ||
		errors.Is(err, ErrNoInput) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, config.ErrInvalidWorkers) ||
		errors.Is(err, tinymd.ErrInvalidHeadingPolicy) ||
		errors.Is(err, tinymd.ErrInvalidFilterPolicy) ||
		errors.Is(err, ErrOutputNotDir) {
		return ExitUsage
	}

	return ExitGeneral
}

// hintFor returns an actionable hint for err, or "" if none applies.
func hintFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, context.Canceled):
		return ""
	case errors.Is(err, config.ErrConfigNotFound):
		return hints.ForConfigNotFound(nil)
	case errors.Is(err, tinymd.ErrHeadingTooShort):
		return hints.ForHeadingTooShort()
	case errors.Is(err, tinymd.ErrLineDecode):
		return hints.ForLineDecode()
	case errors.Is(err, tinymd.ErrInvalidInputName):
		return hints.ForInputName()
	case errors.Is(err, tinymd.ErrWriteOutput):
		return hints.ForOutputDirectory()
	case errors.Is(err, tinymd.ErrInvalidHeadingPolicy):
		return hints.ForPolicy("--heading", []string{pipeline.HeadingStrictName, pipeline.HeadingClampName})
	case errors.Is(err, tinymd.ErrInvalidFilterPolicy):
		return hints.ForPolicy("--filter", []string{pipeline.FilterLiteralName, pipeline.FilterSemanticName, pipeline.FilterNoneName})
	default:
		return ""
	}
}

// configNotFoundHint suggests where a named config could be created.
// Paths get the generic hint since no search took place.
func configNotFoundHint(name string) string {
	if name == "" || fileutil.IsFilePath(name) {
		return hints.ForConfigNotFound(nil)
	}
	return hints.ForConfigNotFound(config.SearchPaths(name))
}
