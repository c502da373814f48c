package pipeline

import "errors"

// Sentinel errors for the transduction pipeline.
var (
	ErrHeadingTooShort = errors.New("heading line shorter than marker prefix")
	ErrLineDecode      = errors.New("line is not valid UTF-8 text")
	ErrReadInput       = errors.New("failed to read input")

	ErrInvalidHeadingPolicy = errors.New("invalid heading policy")
	ErrInvalidFilterPolicy  = errors.New("invalid filter policy")
)
