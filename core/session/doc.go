// Package session holds the in-memory authentication state of the process:
// the current user and the derived is-authenticated flag.
//
// State is the single source of truth for "who is logged in". It is owned by
// the auth gateway — MarkAuthenticated, SetUser, and Clear must only be called
// from there, so the "tokens are persisted before the flag flips" ordering
// stays centralized in one place.
//
// Both the current user and the authenticated flag are observable. A
// subscription delivers the value at subscription time first, then every
// subsequent change in emission order with nothing skipped, so consumers such
// as navigation guards can render the present state immediately and never
// miss a transition:
//
//	sub := state.SubscribeAuth(ctx)
//	for authenticated := range sub.Receive() {
//		toggleProtectedViews(authenticated)
//	}
//
// The authenticated flag becomes true the moment credentials are established,
// before the profile fetch confirms them. A stale persisted token therefore
// produces a short authenticated window until the fetch fails and the state
// clears; this mirrors the optimistic bootstrap behavior of the product and
// is intentional.
package session
