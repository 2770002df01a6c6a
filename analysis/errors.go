package analysis

import "errors"

// Sentinel errors for package analysis.
var (
	ErrNoCandidate   = errors.New("no directory satisfies the size requirement")
	ErrInvalidLimits = errors.New("invalid limits")
)
