package placehub

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/placehub/placehub-go/core/authorizer"
	"github.com/placehub/placehub-go/core/config"
	"github.com/placehub/placehub-go/core/credentials"
	"github.com/placehub/placehub-go/core/gateway"
	"github.com/placehub/placehub-go/core/identity"
	"github.com/placehub/placehub-go/core/profile"
	"github.com/placehub/placehub-go/core/session"
	"github.com/placehub/placehub-go/core/tokenstore"
	"github.com/placehub/placehub-go/pkg/broadcast"
)

// Client is the SDK facade. It owns the session core and exposes the
// authorized HTTP client consumers use for every protected API call.
// Safe for concurrent use.
type Client struct {
	store      tokenstore.Store
	state      *session.State
	gateway    *gateway.Gateway
	httpClient *http.Client
	profiles   *profile.Client
	logger     *slog.Logger
}

// Option configures a Client.
type Option func(*clientOptions)

type clientOptions struct {
	store         tokenstore.Store
	logger        *slog.Logger
	baseTransport http.RoundTripper
}

// WithTokenStore replaces the default file-backed token store, e.g. with
// tokenstore.NewMemory for ephemeral sessions or the Redis store from
// integration/storage/redis for shared ones.
func WithTokenStore(store tokenstore.Store) Option {
	return func(o *clientOptions) {
		if store != nil {
			o.store = store
		}
	}
}

// WithLogger sets a structured logger for the session core. Logging is
// discarded by default.
func WithLogger(logger *slog.Logger) Option {
	return func(o *clientOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBaseTransport sets the round tripper underneath the authorizer,
// e.g. for proxies or instrumentation. Default is http.DefaultTransport.
func WithBaseTransport(rt http.RoundTripper) Option {
	return func(o *clientOptions) {
		if rt != nil {
			o.baseTransport = rt
		}
	}
}

// New creates a fully wired client for the API described by cfg.
//
// Without WithTokenStore the client persists credentials to a JSON file
// under the user configuration directory, so the session survives process
// restarts; if that location is unavailable the store degrades to in-memory,
// which downstream merely looks like being logged out after a restart.
func New(cfg gateway.Config, opts ...Option) (*Client, error) {
	options := &clientOptions{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(options)
	}

	store := options.store
	if store == nil {
		fileStore, err := tokenstore.NewFile(defaultStatePath())
		if err != nil {
			store = tokenstore.NewMemory()
		} else {
			store = fileStore
		}
	}

	state := session.NewState()

	gw, err := gateway.New(cfg, store, state, gateway.WithLogger(options.logger))
	if err != nil {
		state.Close()
		return nil, err
	}

	transportOpts := []authorizer.Option{authorizer.WithLogger(options.logger)}
	if options.baseTransport != nil {
		transportOpts = append(transportOpts, authorizer.WithBase(options.baseTransport))
	}

	transport, err := authorizer.New(credentials.NewProvider(store), gw, transportOpts...)
	if err != nil {
		state.Close()
		return nil, err
	}

	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.HTTPTimeout,
	}

	return &Client{
		store:      store,
		state:      state,
		gateway:    gw,
		httpClient: httpClient,
		profiles:   profile.NewClient(cfg.BaseURL, httpClient),
		logger:     options.logger,
	}, nil
}

// NewFromEnv builds a client from environment variables (PLACEHUB_API_URL
// and friends), loading a .env file on first use. See core/config.
func NewFromEnv(opts ...Option) (*Client, error) {
	var cfg gateway.Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(cfg, opts...)
}

// HTTPClient returns the authorized HTTP client. Requests issued through it
// get the current bearer token attached and the single refresh-and-retry
// cycle applied on authorization failures.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// Login authenticates with email and password. See gateway.Gateway.Login.
func (c *Client) Login(ctx context.Context, email, password string) error {
	return c.gateway.Login(ctx, email, password)
}

// Register creates a new account. See gateway.Gateway.Register.
func (c *Client) Register(ctx context.Context, params gateway.RegisterParams) error {
	return c.gateway.Register(ctx, params)
}

// Refresh forces a credential refresh. Rarely needed directly: the
// authorized HTTP client refreshes on demand.
func (c *Client) Refresh(ctx context.Context) error {
	return c.gateway.Refresh(ctx)
}

// Logout clears the stored credentials and the session state.
func (c *Client) Logout(ctx context.Context) {
	c.gateway.Logout(ctx)
}

// Bootstrap restores a persisted session at startup, if one exists.
func (c *Client) Bootstrap(ctx context.Context) {
	c.gateway.Bootstrap(ctx)
}

// AwaitProfile waits for a pending background profile fetch to settle.
func (c *Client) AwaitProfile(timeout time.Duration) error {
	return c.gateway.AwaitProfile(timeout)
}

// IsAuthenticated is the synchronous route-guard predicate.
func (c *Client) IsAuthenticated() bool {
	return c.state.IsAuthenticated()
}

// CurrentUser returns the current user's profile when one is loaded.
func (c *Client) CurrentUser() (identity.User, bool) {
	return c.state.CurrentUser()
}

// SubscribeAuth observes the authenticated flag: current value first, then
// every transition in order.
func (c *Client) SubscribeAuth(ctx context.Context) *broadcast.Subscriber[bool] {
	return c.state.SubscribeAuth(ctx)
}

// SubscribeUser observes the current user, including the reset to nil on
// logout.
func (c *Client) SubscribeUser(ctx context.Context) *broadcast.Subscriber[*identity.User] {
	return c.state.SubscribeUser(ctx)
}

// Me fetches the authenticated principal's profile through the authorized
// client. Unlike CurrentUser it always asks the server.
func (c *Client) Me(ctx context.Context) (identity.User, error) {
	// Token attachment is the transport's job; no credential is passed here.
	return c.profiles.Me(ctx, "")
}

// Close releases the session state's subscriptions.
func (c *Client) Close() {
	c.state.Close()
}

// defaultStatePath is the default location of the persisted session file.
func defaultStatePath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "placehub", "session.json")
}
