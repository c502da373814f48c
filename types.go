package tinymd

import (
	"io"
	"log/slog"

	"github.com/alnah/go-tinymd/internal/pipeline"
)

// HeadingPolicy controls how heading lines shorter than the "# " marker
// prefix are handled.
type HeadingPolicy = pipeline.HeadingPolicy

// Heading policies.
const (
	HeadingStrict = pipeline.HeadingStrict
	HeadingClamp  = pipeline.HeadingClamp
)

// FilterPolicy decides which fragments are dropped from the output.
type FilterPolicy = pipeline.FilterPolicy

// Filter policies.
const (
	FilterLiteral  = pipeline.FilterLiteral
	FilterSemantic = pipeline.FilterSemantic
	FilterNone     = pipeline.FilterNone
)

// ParseHeadingPolicy resolves "strict" or "clamp". Empty means strict.
func ParseHeadingPolicy(name string) (HeadingPolicy, error) {
	return pipeline.ParseHeadingPolicy(name)
}

// ParseFilterPolicy resolves "literal", "semantic" or "none". Empty means literal.
func ParseFilterPolicy(name string) (FilterPolicy, error) {
	return pipeline.ParseFilterPolicy(name)
}

// Option configures a Converter.
type Option func(*Converter)

// converterConfig holds internal configuration for Converter.
type converterConfig struct {
	heading HeadingPolicy
	filter  FilterPolicy
}

// WithHeadingPolicy sets how unsliceable heading lines are handled.
func WithHeadingPolicy(p HeadingPolicy) Option {
	return func(c *Converter) {
		c.cfg.heading = p
	}
}

// WithFilterPolicy sets which fragments are dropped.
func WithFilterPolicy(p FilterPolicy) Option {
	return func(c *Converter) {
		c.cfg.filter = p
	}
}

// WithLogger sets the logger for pass diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Converter) {
		if l != nil {
			c.logger = l
		}
	}
}

// discardLogger is the default: the library is silent unless asked.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
