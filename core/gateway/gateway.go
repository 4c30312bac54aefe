package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/placehub/placehub-go/core/profile"
	"github.com/placehub/placehub-go/core/session"
	"github.com/placehub/placehub-go/core/tokenstore"
	"github.com/placehub/placehub-go/pkg/async"
)

// refreshKey is the singleflight key for the process-wide refresh exchange.
const refreshKey = "refresh"

// Gateway mutates the session: it exchanges credentials with the remote auth
// endpoints and keeps the token store and session state consistent.
// All methods are safe for concurrent use.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	store      tokenstore.Store
	state      *session.State
	profiles   *profile.Client
	logger     *slog.Logger

	refreshGroup singleflight.Group

	mu           sync.Mutex
	profileFetch *async.Future
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithLogger sets a structured logger. Logging is discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Gateway) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithHTTPClient replaces the HTTP client used for the auth and profile
// endpoints. The client must NOT route through the request authorizer: the
// auth endpoints are public and wiring them through the 401 handler would
// recurse into refresh.
func WithHTTPClient(client *http.Client) Option {
	return func(g *Gateway) {
		if client != nil {
			g.httpClient = client
		}
	}
}

// New creates a gateway over the given store and session state.
func New(cfg Config, store tokenstore.Store, state *session.State, opts ...Option) (*Gateway, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("%w: BaseURL is required", ErrInvalidConfig)
	}
	if store == nil {
		return nil, fmt.Errorf("%w: token store is required", ErrInvalidConfig)
	}
	if state == nil {
		return nil, fmt.Errorf("%w: session state is required", ErrInvalidConfig)
	}

	timeout := cfg.HTTPTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	g := &Gateway{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		store:      store,
		state:      state,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(g)
	}

	g.profiles = profile.NewClient(g.baseURL, g.httpClient)

	return g, nil
}

// Login exchanges email and password for a fresh credential pair. On success
// the tokens are persisted, the session flips to authenticated, and the
// profile loads in the background (see AwaitProfile). A rejected login
// returns ErrInvalidCredentials and leaves the session untouched.
func (g *Gateway) Login(ctx context.Context, email, password string) error {
	resp, err := g.postAuth(ctx, "/auth/login", loginRequest{Email: email, Password: password})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && (apiErr.Status == http.StatusUnauthorized || apiErr.Status == http.StatusForbidden) {
			return errors.Join(ErrInvalidCredentials, apiErr)
		}
		return err
	}

	g.establishSession(ctx, resp)
	g.logger.InfoContext(ctx, "login succeeded", slog.Int64("user_id", resp.UserID))
	return nil
}

// Register creates a new account. A conflicting account yields
// ErrDuplicateAccount; validation failures surface the remote payload
// verbatim as an *APIError. On success it behaves exactly like Login.
func (g *Gateway) Register(ctx context.Context, params RegisterParams) error {
	resp, err := g.postAuth(ctx, "/auth/register", registerRequest{
		Email:           params.Email,
		FirstName:       params.FirstName,
		LastName:        params.LastName,
		Password:        params.Password,
		ConfirmPassword: params.ConfirmPassword,
	})
	if err != nil {
		var apiErr *APIError
		if errors.As(err, &apiErr) && apiErr.Status == http.StatusConflict {
			return errors.Join(ErrDuplicateAccount, apiErr)
		}
		return err
	}

	g.establishSession(ctx, resp)
	g.logger.InfoContext(ctx, "registration succeeded", slog.Int64("user_id", resp.UserID))
	return nil
}

// Refresh exchanges the stored refresh token for a new credential pair.
//
// Concurrent callers coalesce into a single upstream exchange and all receive
// its result; the exchange itself runs on a cancel-detached context so it
// completes even if every triggering request has been abandoned.
//
// An absent refresh token short-circuits with ErrNoRefreshToken before any
// network activity. Both that case and a remote rejection clear the whole
// session before returning.
func (g *Gateway) Refresh(ctx context.Context) error {
	_, err, _ := g.refreshGroup.Do(refreshKey, func() (any, error) {
		return nil, g.doRefresh(context.WithoutCancel(ctx))
	})
	return err
}

// doRefresh performs the actual exchange. Runs at most once per coalescing
// window.
func (g *Gateway) doRefresh(ctx context.Context) error {
	refreshToken, ok := g.store.Get(ctx, tokenstore.KeyRefreshToken)
	if !ok || refreshToken == "" {
		g.clearSession(ctx)
		return ErrNoRefreshToken
	}

	resp, err := g.postAuth(ctx, "/auth/refresh", refreshRequest{RefreshToken: refreshToken})
	if err != nil {
		// Any refresh failure ends the session: the token is single-use
		// server-side, so there is nothing left to retry with.
		g.clearSession(ctx)
		g.logger.WarnContext(ctx, "refresh failed, session cleared", slog.Any("error", err))
		if errors.Is(err, ErrNetwork) {
			return err
		}
		return errors.Join(ErrRefreshRejected, err)
	}

	g.establishSession(ctx, resp)
	g.logger.InfoContext(ctx, "token refreshed", slog.Int64("user_id", resp.UserID))
	return nil
}

// Logout clears the stored credentials and the session state. Purely local.
func (g *Gateway) Logout(ctx context.Context) {
	g.clearSession(ctx)
	g.logger.InfoContext(ctx, "logged out")
}

// Bootstrap restores the session at startup. If the store holds an access
// token, the session optimistically flips to authenticated and the profile
// fetch is scheduled; a fetch failure clears the session again, so a stale
// persisted token cannot be trusted indefinitely. Without a stored token this
// is a no-op.
func (g *Gateway) Bootstrap(ctx context.Context) {
	token, ok := g.store.Get(ctx, tokenstore.KeyAccessToken)
	if !ok || token == "" {
		return
	}

	g.state.MarkAuthenticated()
	g.scheduleProfileFetch(ctx)
	g.logger.InfoContext(ctx, "session bootstrapped from stored token")
}

// AwaitProfile blocks until the most recently scheduled profile fetch
// settles, up to the given timeout. Returns nil immediately when no fetch is
// pending. Intended for consumers that need the profile deterministically
// (and for tests).
func (g *Gateway) AwaitProfile(timeout time.Duration) error {
	g.mu.Lock()
	fetch := g.profileFetch
	g.mu.Unlock()

	if fetch == nil {
		return nil
	}
	return fetch.AwaitWithTimeout(timeout)
}

// establishSession persists the fresh credential pair and flips the session
// to authenticated. Store writes happen strictly before the flag flip so a
// concurrent credential read never observes authenticated-without-token.
func (g *Gateway) establishSession(ctx context.Context, resp *authResponse) {
	for key, value := range map[tokenstore.Key]string{
		tokenstore.KeyAccessToken:  resp.AccessToken,
		tokenstore.KeyRefreshToken: resp.RefreshToken,
		tokenstore.KeyUserID:       strconv.FormatInt(resp.UserID, 10),
	} {
		if err := g.store.Set(ctx, key, value); err != nil {
			g.logger.ErrorContext(ctx, "failed to persist credential slot",
				slog.String("slot", string(key)), slog.Any("error", err))
		}
	}

	g.state.MarkAuthenticated()
	g.scheduleProfileFetch(ctx)
}

// scheduleProfileFetch loads the profile in the background and populates the
// session state. A failure means the held token is invalid: the session is
// torn down. Detached from the caller's context because other components may
// already depend on the authenticated state.
func (g *Gateway) scheduleProfileFetch(ctx context.Context) {
	fetch := async.Run(context.WithoutCancel(ctx), func(ctx context.Context) error {
		token, _ := g.store.Get(ctx, tokenstore.KeyAccessToken)

		user, err := g.profiles.Me(ctx, token)
		if err != nil {
			g.clearSession(ctx)
			g.logger.WarnContext(ctx, "profile fetch failed, session cleared", slog.Any("error", err))
			return err
		}

		g.state.SetUser(user)
		return nil
	})

	g.mu.Lock()
	g.profileFetch = fetch
	g.mu.Unlock()
}

// clearSession removes every credential slot and resets the session state.
// Callers rely on this running before the triggering error propagates.
func (g *Gateway) clearSession(ctx context.Context) {
	if err := tokenstore.Clear(ctx, g.store); err != nil {
		g.logger.ErrorContext(ctx, "failed to clear token store", slog.Any("error", err))
	}
	g.state.Clear()
}

// postAuth POSTs a JSON payload to an auth endpoint and decodes the shared
// auth response. Non-2xx statuses are returned as *APIError with the remote
// payload attached; transport failures map to ErrNetwork.
func (g *Gateway) postAuth(ctx context.Context, path string, payload any) (*authResponse, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		apiErr := &APIError{Status: resp.StatusCode}
		// Best effort: keep whatever message the server sent.
		_ = json.NewDecoder(resp.Body).Decode(apiErr)
		return nil, apiErr
	}

	var authResp authResponse
	if err := json.NewDecoder(resp.Body).Decode(&authResp); err != nil {
		return nil, errors.Join(ErrNetwork, err)
	}

	return &authResp, nil
}
