package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/placehub/placehub-go/core/identity"
)

// Client fetches profiles from the remote API. It attaches the bearer token
// it is handed explicitly and performs no token management of its own; the
// gateway decides which credential to present.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a profile client for the API at baseURL.
// A nil httpClient falls back to http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// Me returns the profile of the principal identified by accessToken.
// Any transport failure or non-2xx status yields ErrUnavailable.
func (c *Client) Me(ctx context.Context, accessToken string) (identity.User, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/profile/me", nil)
	if err != nil {
		return identity.User{}, errors.Join(ErrUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")
	if accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return identity.User{}, errors.Join(ErrUnavailable, err)
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return identity.User{}, errors.Join(ErrUnavailable, fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var user identity.User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return identity.User{}, errors.Join(ErrDecode, err)
	}

	return user, nil
}
