package session_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/placehub/placehub-go/core/identity"
	"github.com/placehub/placehub-go/core/session"
	"github.com/placehub/placehub-go/pkg/broadcast"
)

func testUser() identity.User {
	return identity.User{
		ID:        7,
		Email:     "a@x.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}
}

// nextAuth reads one authenticated-flag emission with a deadline.
func nextAuth(t *testing.T, sub *broadcast.Subscriber[bool]) bool {
	t.Helper()

	select {
	case v, ok := <-sub.Receive():
		require.True(t, ok, "auth channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for auth emission")
		panic("unreachable")
	}
}

// nextUser reads one current-user emission with a deadline.
func nextUser(t *testing.T, sub *broadcast.Subscriber[*identity.User]) *identity.User {
	t.Helper()

	select {
	case v, ok := <-sub.Receive():
		require.True(t, ok, "user channel closed unexpectedly")
		return v
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for user emission")
		panic("unreachable")
	}
}

func TestState_InitiallyLoggedOut(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	assert.False(t, state.IsAuthenticated())
	_, ok := state.CurrentUser()
	assert.False(t, ok)
}

func TestState_MarkAuthenticated(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	sub := state.SubscribeAuth(context.Background())
	defer sub.Close()

	assert.False(t, nextAuth(t, sub), "subscription seeds the current value")

	state.MarkAuthenticated()

	assert.True(t, nextAuth(t, sub))
	assert.True(t, state.IsAuthenticated())

	// A repeated flip does not emit again; the user channel confirms the
	// relative order of later emissions instead.
	state.MarkAuthenticated()
	assert.True(t, state.IsAuthenticated())
}

func TestState_SetUser(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	authSub := state.SubscribeAuth(context.Background())
	userSub := state.SubscribeUser(context.Background())
	defer authSub.Close()
	defer userSub.Close()

	assert.False(t, nextAuth(t, authSub))
	assert.Nil(t, nextUser(t, userSub), "subscription seeds nil before any profile is loaded")

	user := testUser()
	state.SetUser(user)

	got := nextUser(t, userSub)
	require.NotNil(t, got)
	assert.Equal(t, user, *got)
	assert.True(t, nextAuth(t, authSub), "setting a user implies authenticated")

	current, ok := state.CurrentUser()
	assert.True(t, ok)
	assert.Equal(t, user, current)
}

func TestState_Clear(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	state.SetUser(testUser())

	authSub := state.SubscribeAuth(context.Background())
	userSub := state.SubscribeUser(context.Background())
	defer authSub.Close()
	defer userSub.Close()

	assert.True(t, nextAuth(t, authSub))
	require.NotNil(t, nextUser(t, userSub))

	state.Clear()

	assert.False(t, nextAuth(t, authSub))
	assert.Nil(t, nextUser(t, userSub))

	assert.False(t, state.IsAuthenticated())
	_, ok := state.CurrentUser()
	assert.False(t, ok)
}

func TestState_NoMissedTransitions(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	sub := state.SubscribeAuth(context.Background())
	defer sub.Close()

	// login → logout → login, observed in full.
	state.MarkAuthenticated()
	state.Clear()
	state.SetUser(testUser())

	want := []bool{false, true, false, true}
	for i, expected := range want {
		assert.Equal(t, expected, nextAuth(t, sub), "transition %d", i)
	}
}

func TestState_SubscriberSnapshotIsolation(t *testing.T) {
	t.Parallel()

	state := session.NewState()
	defer state.Close()

	user := testUser()
	state.SetUser(user)

	// Mutating the returned copy must not leak back into the state.
	current, ok := state.CurrentUser()
	require.True(t, ok)
	current.FirstName = "changed"

	again, ok := state.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, "Ada", again.FirstName)
}
