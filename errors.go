package tinymd

import (
	"errors"

	"github.com/alnah/go-tinymd/internal/pipeline"
)

// Sentinel errors for library operations.
var (
	ErrWriteOutput      = errors.New("failed to write output file")
	ErrInvalidInputName = errors.New("cannot derive output name from input")

	// Pipeline errors, re-exported for errors.Is checks.
	ErrHeadingTooShort      = pipeline.ErrHeadingTooShort
	ErrLineDecode           = pipeline.ErrLineDecode
	ErrReadInput            = pipeline.ErrReadInput
	ErrInvalidHeadingPolicy = pipeline.ErrInvalidHeadingPolicy
	ErrInvalidFilterPolicy  = pipeline.ErrInvalidFilterPolicy
)
