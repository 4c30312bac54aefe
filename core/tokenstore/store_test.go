package tokenstore_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placehub/placehub-go/core/tokenstore"
)

func TestMemory(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("absent slot reads as missing", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()

		value, ok := store.Get(ctx, tokenstore.KeyAccessToken)
		assert.False(t, ok)
		assert.Empty(t, value)
	})

	t.Run("set then get round-trips", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "token-1"))

		value, ok := store.Get(ctx, tokenstore.KeyAccessToken)
		assert.True(t, ok)
		assert.Equal(t, "token-1", value)
	})

	t.Run("remove deletes the slot", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()
		require.NoError(t, store.Set(ctx, tokenstore.KeyRefreshToken, "refresh-1"))
		require.NoError(t, store.Remove(ctx, tokenstore.KeyRefreshToken))

		_, ok := store.Get(ctx, tokenstore.KeyRefreshToken)
		assert.False(t, ok)
	})

	t.Run("removing an absent slot is a no-op", func(t *testing.T) {
		t.Parallel()

		store := tokenstore.NewMemory()
		assert.NoError(t, store.Remove(ctx, tokenstore.KeyUserID))
	})
}

func TestClear(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := tokenstore.NewMemory()

	require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "a"))
	require.NoError(t, store.Set(ctx, tokenstore.KeyRefreshToken, "r"))
	require.NoError(t, store.Set(ctx, tokenstore.KeyUserID, "7"))

	require.NoError(t, tokenstore.Clear(ctx, store))

	for _, key := range []tokenstore.Key{tokenstore.KeyAccessToken, tokenstore.KeyRefreshToken, tokenstore.KeyUserID} {
		_, ok := store.Get(ctx, key)
		assert.False(t, ok, "slot %s should be absent after clear", key)
	}
}

func TestFile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("persists across reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")

		store, err := tokenstore.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "a1"))
		require.NoError(t, store.Set(ctx, tokenstore.KeyUserID, "7"))

		reopened, err := tokenstore.NewFile(path)
		require.NoError(t, err)

		value, ok := reopened.Get(ctx, tokenstore.KeyAccessToken)
		assert.True(t, ok)
		assert.Equal(t, "a1", value)

		value, ok = reopened.Get(ctx, tokenstore.KeyUserID)
		assert.True(t, ok)
		assert.Equal(t, "7", value)
	})

	t.Run("remove persists across reopen", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")

		store, err := tokenstore.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "a1"))
		require.NoError(t, store.Remove(ctx, tokenstore.KeyAccessToken))

		reopened, err := tokenstore.NewFile(path)
		require.NoError(t, err)

		_, ok := reopened.Get(ctx, tokenstore.KeyAccessToken)
		assert.False(t, ok)
	})

	t.Run("corrupted state file degrades to empty store", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "session.json")
		require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

		store, err := tokenstore.NewFile(path)
		require.NoError(t, err)

		_, ok := store.Get(ctx, tokenstore.KeyAccessToken)
		assert.False(t, ok)
	})

	t.Run("creates missing parent directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "deeper", "session.json")

		store, err := tokenstore.NewFile(path)
		require.NoError(t, err)
		require.NoError(t, store.Set(ctx, tokenstore.KeyAccessToken, "a1"))

		_, err = os.Stat(path)
		assert.NoError(t, err)
	})
}
