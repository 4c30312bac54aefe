package profile

import "errors"

var (
	// ErrUnavailable is returned when the profile endpoint could not be
	// reached or answered with a non-2xx status.
	ErrUnavailable = errors.New("profile: failed to load profile")
	// ErrDecode is returned when the profile payload could not be decoded.
	ErrDecode = errors.New("profile: failed to decode profile payload")
)
