// Package tokenstore provides durable key/value persistence for the session
// credential slots: access token, refresh token, and user id.
//
// The Store contract deliberately folds storage failures into absence on the
// read path. A missing slot and an unreadable backend look identical to
// callers, and downstream both are treated as "logged out" — the SDK never
// needs to distinguish a broken store from an empty one to stay correct.
// Write failures are reported so callers can log them, but no component makes
// control-flow decisions on them.
//
// Two implementations ship with the package: Memory for tests and ephemeral
// processes, and File for persistence across process restarts. A Redis-backed
// implementation lives in integration/storage/redis for deployments that keep
// session material in a shared store.
//
// All implementations are safe for concurrent use and guarantee that a Set
// completed before a request is issued is visible to any Get performed on
// behalf of that request (read-after-write consistency).
package tokenstore
