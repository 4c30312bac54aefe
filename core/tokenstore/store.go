package tokenstore

import (
	"context"
	"errors"
)

// Key identifies one of the logical credential slots.
type Key string

// The three slots the session layer persists. No other keys are ever written.
const (
	KeyAccessToken  Key = "access_token"
	KeyRefreshToken Key = "refresh_token"
	KeyUserID       Key = "user_id"
)

// keys lists every slot for bulk operations.
var keys = []Key{KeyAccessToken, KeyRefreshToken, KeyUserID}

// Store persists the credential slots.
//
// Get returns the stored value and true, or "" and false when the slot is
// absent or the backend failed — the two cases are intentionally
// indistinguishable (storage failures degrade to logged-out).
type Store interface {
	Get(ctx context.Context, key Key) (string, bool)
	Set(ctx context.Context, key Key, value string) error
	Remove(ctx context.Context, key Key) error
}

// Clear removes every credential slot from the store.
// All slots are attempted even if one removal fails.
func Clear(ctx context.Context, s Store) error {
	var errs []error
	for _, key := range keys {
		if err := s.Remove(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
