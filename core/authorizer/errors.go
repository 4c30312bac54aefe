package authorizer

import "errors"

var (
	// ErrInvalidConfig is returned when the transport is constructed without
	// its required collaborators.
	ErrInvalidConfig = errors.New("authorizer: invalid configuration")

	// ErrBodyBuffer is returned when a request body cannot be buffered for
	// the potential retry.
	ErrBodyBuffer = errors.New("authorizer: failed to buffer request body")
)
