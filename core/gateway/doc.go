// Package gateway performs the network operations that mutate session state:
// login, register, token refresh, and the startup bootstrap. It is the only
// component allowed to write the token store or the session state, which
// keeps the central ordering invariant in one place: credentials are
// persisted before the authenticated flag flips, so a concurrent read through
// the credential provider can never observe "authenticated" without a token.
//
// Refresh is coalesced process-wide. Any number of callers hitting Refresh
// while an exchange is in flight share that single exchange and its result;
// the refresh token is presented upstream exactly once per expiry. This
// matters because refresh tokens are single-use server-side: without
// coalescing, N requests failing over an expired access token would race N
// refresh calls, of which only the first can succeed, and the rest would tear
// the session down spuriously. The in-flight exchange runs on a
// cancel-detached context so an abandoned triggering request cannot interrupt
// an exchange that other requests are waiting on.
//
// Failure semantics follow the error taxonomy in errors.go. Every
// session-destroying failure (absent or rejected refresh token, failed
// profile verification) clears the token store and the session state before
// the error propagates, so callers never clean up auth state themselves.
package gateway
