package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrInvalidConfig is returned when the gateway is constructed with an
	// unusable configuration.
	ErrInvalidConfig = errors.New("gateway: invalid configuration")

	// ErrInvalidCredentials is returned when login is rejected by the remote
	// side. The session is not mutated.
	ErrInvalidCredentials = errors.New("gateway: invalid credentials")

	// ErrDuplicateAccount is returned when registration conflicts with an
	// existing account.
	ErrDuplicateAccount = errors.New("gateway: account already exists")

	// ErrNoRefreshToken is returned when a refresh is attempted without a
	// stored refresh token. No network call is made; the session is cleared.
	ErrNoRefreshToken = errors.New("gateway: no refresh token available")

	// ErrRefreshRejected is returned when the remote side denies the refresh
	// token. The session is cleared; this is the single forced-logout point.
	ErrRefreshRejected = errors.New("gateway: refresh token rejected")

	// ErrNetwork is returned for transport-level failures. The core performs
	// no automatic retries beyond the single refresh-retry cycle.
	ErrNetwork = errors.New("gateway: network error")
)

// APIError carries a remote error payload verbatim so callers can surface
// server-side messages (validation failures in particular) to the user.
type APIError struct {
	Status  int               `json:"-"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"errors,omitempty"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("remote error: %s", http.StatusText(e.Status))
}
