package session

import "errors"

// Sentinel errors for package session.
// These errors can be checked with errors.Is() for specific error handling.
var (
	// Transcript errors
	ErrLeadingOutput    = errors.New("transcript has output before the first prompt")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformedCommand = errors.New("malformed command")

	// Replay errors
	ErrMissingRoot = errors.New("session must start with cd /")
	ErrAboveRoot   = errors.New("cannot cd .. from the root directory")
)
