package credentials

import (
	"context"

	"github.com/placehub/placehub-go/core/tokenstore"
)

// Provider reads the current credentials from the token store.
// All methods are side-effect free.
type Provider struct {
	store tokenstore.Store
}

// NewProvider creates a provider over the given store.
func NewProvider(store tokenstore.Store) *Provider {
	return &Provider{store: store}
}

// AccessToken returns the current access token, or false when none is held.
// A storage failure reads as absence.
func (p *Provider) AccessToken(ctx context.Context) (string, bool) {
	token, ok := p.store.Get(ctx, tokenstore.KeyAccessToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// RefreshToken returns the current refresh token, or false when none is held.
func (p *Provider) RefreshToken(ctx context.Context) (string, bool) {
	token, ok := p.store.Get(ctx, tokenstore.KeyRefreshToken)
	if !ok || token == "" {
		return "", false
	}
	return token, true
}

// UserID returns the persisted user id slot, or false when none is held.
func (p *Provider) UserID(ctx context.Context) (string, bool) {
	id, ok := p.store.Get(ctx, tokenstore.KeyUserID)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}
