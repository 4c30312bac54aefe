package session

import (
	"context"
	"sync"

	"github.com/placehub/placehub-go/core/identity"
	"github.com/placehub/placehub-go/pkg/broadcast"
)

// State is the observable session holder. Create it with NewState; the zero
// value is not usable.
//
// Reads (CurrentUser, IsAuthenticated, subscriptions) are safe from anywhere.
// Mutations are reserved for the auth gateway.
//
// Publishing happens under the state lock; Relay.Publish never blocks, so
// emission order on both channels always matches mutation order.
type State struct {
	mu            sync.RWMutex
	user          *identity.User
	authenticated bool

	users *broadcast.Relay[*identity.User]
	auth  *broadcast.Relay[bool]
}

// NewState creates an empty, unauthenticated session state.
func NewState() *State {
	return &State{
		users: broadcast.NewRelay[*identity.User](),
		auth:  broadcast.NewRelay[bool](),
	}
}

// MarkAuthenticated flips the authenticated flag without touching the current
// user. The gateway calls this right after persisting a fresh credential
// pair; the profile arrives later via SetUser.
func (s *State) MarkAuthenticated() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.authenticated {
		s.authenticated = true
		s.auth.Publish(true)
	}
}

// SetUser stores the authenticated user's profile and ensures the
// authenticated flag is set.
func (s *State) SetUser(user identity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	u := user
	s.user = &u
	s.users.Publish(&u)

	if !s.authenticated {
		s.authenticated = true
		s.auth.Publish(true)
	}
}

// Clear resets the state to logged out: user absent, flag false.
// Emits on both channels so subscribers observe the teardown.
func (s *State) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user != nil {
		s.user = nil
		s.users.Publish(nil)
	}
	if s.authenticated {
		s.authenticated = false
		s.auth.Publish(false)
	}
}

// CurrentUser returns the current user's profile, or false when no profile
// is loaded.
func (s *State) CurrentUser() (identity.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.user == nil {
		return identity.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports the authenticated flag. This is the synchronous
// route-guard predicate.
func (s *State) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.authenticated
}

// SubscribeUser observes the current user. The subscription is seeded with
// the present value (nil when no profile is loaded) and then receives every
// change, including the reset to nil on logout.
func (s *State) SubscribeUser(ctx context.Context) *broadcast.Subscriber[*identity.User] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.users.Subscribe(ctx, s.user)
}

// SubscribeAuth observes the authenticated flag. The subscription is seeded
// with the present value and then receives every transition in order.
func (s *State) SubscribeAuth(ctx context.Context) *broadcast.Subscriber[bool] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.auth.Subscribe(ctx, s.authenticated)
}

// Close terminates all subscriptions.
func (s *State) Close() {
	s.users.Close()
	s.auth.Close()
}
