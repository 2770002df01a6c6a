package tree

import "errors"

// Sentinel errors for package tree.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Listing errors
	ErrMalformedListing = errors.New("malformed listing entry")
	ErrNegativeSize     = errors.New("file size must not be negative")
)
