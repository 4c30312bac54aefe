package authorizer

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/placehub/placehub-go/core/credentials"
)

const (
	headerAuthorization = "Authorization"
	headerRequestID     = "X-Request-ID"
	bearerPrefix        = "Bearer "
)

// defaultPublicEndpoints is the allow-list of path fragments that identify
// public requests. The auth endpoints must stay here: routing them through
// the retry logic would refresh while calling refresh.
var defaultPublicEndpoints = []string{"/auth/login", "/auth/register", "/auth/refresh"}

// Refresher drives the single credential refresh after an authorization
// failure. Implementations must coalesce concurrent calls into one upstream
// exchange; *gateway.Gateway satisfies this.
type Refresher interface {
	Refresh(ctx context.Context) error
}

// Transport is the request-authorizing http.RoundTripper. Create it with
// New; the zero value is not usable. Safe for concurrent use.
type Transport struct {
	base      http.RoundTripper
	creds     *credentials.Provider
	refresher Refresher
	public    []string
	requestID bool
	logger    *slog.Logger
}

// Option configures a Transport.
type Option func(*Transport)

// WithBase sets the underlying round tripper. Default is
// http.DefaultTransport.
func WithBase(base http.RoundTripper) Option {
	return func(t *Transport) {
		if base != nil {
			t.base = base
		}
	}
}

// WithPublicEndpoints replaces the public allow-list. Matching is by
// substring against the request path, mirroring the server's route layout.
func WithPublicEndpoints(endpoints ...string) Option {
	return func(t *Transport) {
		if len(endpoints) > 0 {
			t.public = endpoints
		}
	}
}

// WithRequestIDs controls generation of X-Request-ID headers on protected
// requests. Enabled by default; an id already set by the caller is kept.
func WithRequestIDs(enabled bool) Option {
	return func(t *Transport) {
		t.requestID = enabled
	}
}

// WithLogger sets a structured logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(t *Transport) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// New creates a Transport reading credentials from creds and delegating
// refresh to refresher.
func New(creds *credentials.Provider, refresher Refresher, opts ...Option) (*Transport, error) {
	if creds == nil {
		return nil, fmt.Errorf("%w: credential provider is required", ErrInvalidConfig)
	}
	if refresher == nil {
		return nil, fmt.Errorf("%w: refresher is required", ErrInvalidConfig)
	}

	t := &Transport{
		base:      http.DefaultTransport,
		creds:     creds,
		refresher: refresher,
		public:    defaultPublicEndpoints,
		requestID: true,
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// RoundTrip implements http.RoundTripper. The caller's request is never
// mutated; each attempt goes out on its own clone.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.isPublic(req.URL.Path) {
		return t.base.RoundTrip(req)
	}

	ctx := req.Context()

	// Buffer the body up front when it cannot be re-materialized, so the
	// single retry can replay it byte for byte.
	getBody := req.GetBody
	if req.Body != nil && req.Body != http.NoBody && getBody == nil {
		data, err := io.ReadAll(req.Body)
		_ = req.Body.Close()
		if err != nil {
			return nil, errors.Join(ErrBodyBuffer, err)
		}
		getBody = func() (io.ReadCloser, error) {
			return io.NopCloser(bytes.NewReader(data)), nil
		}
	}

	attempt, err := t.newAttempt(ctx, req, getBody)
	if err != nil {
		return nil, err
	}

	resp, err := t.base.RoundTrip(attempt)
	if err != nil || resp.StatusCode != http.StatusUnauthorized {
		return resp, err
	}

	// Hold on to the original 401: it is what the caller sees if recovery
	// fails at any point from here on.
	unauthorized, err := bufferResponse(resp)
	if err != nil {
		return nil, err
	}

	t.logger.DebugContext(ctx, "authorization failure, refreshing credentials",
		slog.String("method", req.Method), slog.String("path", req.URL.Path))

	if err := t.refresher.Refresh(ctx); err != nil {
		// Forced logout already happened inside the refresher. The caller
		// gets the original rejection, not the refresh error.
		t.logger.DebugContext(ctx, "refresh failed, surfacing original rejection",
			slog.Any("error", err))
		return unauthorized, nil
	}

	retry, err := t.newAttempt(ctx, req, getBody)
	if err != nil {
		return unauthorized, nil
	}

	// Exactly one replay. Whatever comes back is terminal, second 401
	// included.
	retryResp, retryErr := t.base.RoundTrip(retry)
	if retryErr != nil {
		return nil, retryErr
	}

	_ = unauthorized.Body.Close()
	return retryResp, nil
}

// newAttempt clones the original request with a fresh body and the current
// access token attached. Reading the token anew on each attempt is what
// picks up the refreshed credential for the retry.
func (t *Transport) newAttempt(ctx context.Context, req *http.Request, getBody func() (io.ReadCloser, error)) (*http.Request, error) {
	attempt := req.Clone(ctx)

	if getBody != nil {
		body, err := getBody()
		if err != nil {
			return nil, errors.Join(ErrBodyBuffer, err)
		}
		attempt.Body = body
		attempt.GetBody = getBody
	}

	if token, ok := t.creds.AccessToken(ctx); ok {
		attempt.Header.Set(headerAuthorization, bearerPrefix+token)
	}

	if t.requestID && attempt.Header.Get(headerRequestID) == "" {
		attempt.Header.Set(headerRequestID, uuid.New().String())
	}

	return attempt, nil
}

// isPublic classifies the request path against the allow-list.
func (t *Transport) isPublic(path string) bool {
	for _, endpoint := range t.public {
		if strings.Contains(path, endpoint) {
			return true
		}
	}
	return false
}

// bufferResponse drains the response body into memory so the response stays
// readable after the connection is reused for the retry.
func bufferResponse(resp *http.Response) (*http.Response, error) {
	data, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, err
	}
	resp.Body = io.NopCloser(bytes.NewReader(data))
	return resp, nil
}
