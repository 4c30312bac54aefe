package redis

import (
	"context"
	"errors"

	"github.com/redis/go-redis/v9"

	"github.com/placehub/placehub-go/core/tokenstore"
)

// defaultKeyPrefix namespaces the credential slots in a shared Redis.
const defaultKeyPrefix = "placehub:session:"

// Store is a tokenstore.Store backed by Redis. Slots are stored as plain
// string keys under a configurable prefix, with no TTL: expiry is the
// server's call, signalled through a 401, never enforced locally.
type Store struct {
	client *redis.Client
	prefix string
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithKeyPrefix overrides the key prefix. Useful when several applications
// share one Redis database.
func WithKeyPrefix(prefix string) StoreOption {
	return func(s *Store) {
		if prefix != "" {
			s.prefix = prefix
		}
	}
}

// NewStore creates a Redis-backed token store over an established client.
func NewStore(client *redis.Client, opts ...StoreOption) *Store {
	s := &Store{
		client: client,
		prefix: defaultKeyPrefix,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Get returns the stored value for key. Both an absent key and a Redis
// failure read as absence, per the tokenstore contract.
func (s *Store) Get(ctx context.Context, key tokenstore.Key) (string, bool) {
	value, err := s.client.Get(ctx, s.key(key)).Result()
	if err != nil {
		return "", false
	}
	return value, true
}

// Set stores value under key without expiry.
func (s *Store) Set(ctx context.Context, key tokenstore.Key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return errors.Join(tokenstore.ErrPersist, err)
	}
	return nil
}

// Remove deletes the slot. Removing an absent slot is a no-op.
func (s *Store) Remove(ctx context.Context, key tokenstore.Key) error {
	if err := s.client.Del(ctx, s.key(key)).Err(); err != nil {
		return errors.Join(tokenstore.ErrPersist, err)
	}
	return nil
}

func (s *Store) key(key tokenstore.Key) string {
	return s.prefix + string(key)
}
