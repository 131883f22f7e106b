package media

import "errors"

var (
	// ErrAuthentication indicates credentials or a token were rejected.
	ErrAuthentication = errors.New("authentication failed")

	// ErrUpstream indicates a server returned a non-success status or a body
	// that could not be decoded.
	ErrUpstream = errors.New("upstream error")

	// ErrMatchMiss indicates a source item has no counterpart on the target.
	// This is informational, not a failure.
	ErrMatchMiss = errors.New("no matching item")

	// ErrMalformedRecord indicates a required field is missing from a record.
	ErrMalformedRecord = errors.New("malformed record")

	// ErrUnknownCategory indicates an item kind outside the supported set.
	ErrUnknownCategory = errors.New("unknown media category")
)
