package tinymd

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/alnah/go-tinymd/internal/fileutil"
	"github.com/alnah/go-tinymd/internal/pipeline"
)

// filePermissions is the mode of written HTML files (rw-r--r--).
const filePermissions = 0o644

// Converter runs transduction passes with a fixed set of policies.
// Create with NewConverter. Safe for concurrent use.
type Converter struct {
	cfg    converterConfig
	logger *slog.Logger
}

// Result holds the output of one pass.
type Result struct {
	Fragments []string // kept fragments, in input order
	Lines     int      // input lines read
	Dropped   int      // fragments removed by the filter
}

// HTML returns the document: the kept fragments concatenated verbatim.
func (r *Result) HTML() []byte {
	var b strings.Builder
	for _, f := range r.Fragments {
		b.WriteString(f)
	}
	return []byte(b.String())
}

// NewConverter creates a Converter with HeadingStrict and FilterLiteral.
func NewConverter(opts ...Option) *Converter {
	c := &Converter{
		cfg: converterConfig{
			heading: HeadingStrict,
			filter:  FilterLiteral,
		},
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Convert reads r line by line and returns the kept fragments.
// The pass stops at the first read, decode, or heading error, or when ctx is
// canceled; no partial Result is returned.
func (c *Converter) Convert(ctx context.Context, r io.Reader) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t := pipeline.NewTransducer(c.cfg.heading)
	lines := pipeline.NewLineReader(r)
	result := &Result{}

	for lines.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		fragment, err := t.Transduce(lines.Text())
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lines.Number(), err)
		}
		result.Lines++

		if !c.cfg.filter.Keep(fragment) {
			result.Dropped++
			continue
		}
		result.Fragments = append(result.Fragments, fragment)
	}
	if err := lines.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

// ConvertString is Convert over an in-memory document.
func (c *Converter) ConvertString(ctx context.Context, markdown string) (*Result, error) {
	return c.Convert(ctx, strings.NewReader(markdown))
}

// ConvertFile converts inputPath and writes the document to outputPath.
// An empty outputPath is derived with OutputPath. The output file is only
// created once the whole pass has succeeded.
func (c *Converter) ConvertFile(ctx context.Context, inputPath, outputPath string) (*Result, error) {
	if outputPath == "" {
		var err error
		outputPath, err = OutputPath(inputPath)
		if err != nil {
			return nil, err
		}
	}

	log := c.logger.With("input", inputPath, "output", outputPath)
	log.Debug("starting pass", "heading", c.cfg.heading, "filter", c.cfg.filter)

	f, err := os.Open(inputPath) // #nosec G304 -- input path is user-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}
	defer func() { _ = f.Close() }()

	result, err := c.Convert(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", inputPath, err)
	}

	if err := fileutil.WriteFileAtomic(outputPath, result.HTML(), filePermissions); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	log.Debug("pass complete",
		"lines", result.Lines,
		"fragments", len(result.Fragments),
		"dropped", result.Dropped,
	)
	return result, nil
}
