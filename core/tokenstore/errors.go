package tokenstore

import "errors"

var (
	// ErrPersist is returned when a write could not be flushed to the backing
	// storage. The in-memory state is still updated; reads keep working.
	ErrPersist = errors.New("tokenstore: failed to persist state")
)
