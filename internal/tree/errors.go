package tree

import "errors"

// Error kinds. Callers match them with errors.Is; build and decode errors
// wrap one of these with path or field context.
var (
	// ErrNotFound means the snapshot root did not exist at build time.
	ErrNotFound = errors.New("snapshot root not found")

	// ErrIO means a read or listing failure while building a snapshot.
	ErrIO = errors.New("read failure")

	// ErrFormat means a persisted record was missing required fields or
	// carried unrecognized kind/status values.
	ErrFormat = errors.New("malformed snapshot record")
)
