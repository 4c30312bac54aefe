package credentials_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placehub/placehub-go/core/credentials"
	"github.com/placehub/placehub-go/core/tokenstore"
)

func TestProvider(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("empty store yields no credentials", func(t *testing.T) {
		t.Parallel()

		provider := credentials.NewProvider(tokenstore.NewMemory())

		_, ok := provider.AccessToken(ctx)
		assert.False(t, ok)
		_, ok = provider.RefreshToken(ctx)
		assert.False(t, ok)
		_, ok = provider.UserID(ctx)
		assert.False(t, ok)
	})

	t.Run("reads stored values", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "access-1"))
		require.NoError(t, store.Set(ctx, tokenstore.KeyRefreshToken, "refresh-1"))
		require.NoError(t, store.Set(ctx, tokenstore.KeyUserID, "7"))

		provider := credentials.NewProvider(store)

		token, ok := provider.AccessToken(ctx)
		assert.True(t, ok)
		assert.Equal(t, "access-1", token)

		token, ok = provider.RefreshToken(ctx)
		assert.True(t, ok)
		assert.Equal(t, "refresh-1", token)

		id, ok := provider.UserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "7", id)
	})

	t.Run("empty string value reads as absent", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, ""))

		provider := credentials.NewProvider(store)

		_, ok := provider.AccessToken(ctx)
		assert.False(t, ok)
	})
}
