// Package redis provides a Redis-backed token store plus client
// initialization with connection verification.
//
// File-backed persistence (core/tokenstore.File) covers single-machine
// consumers; this package serves headless or server-side SDK deployments
// that keep session material in a shared store so the session survives
// process replacement, not just restart.
//
// Connect validates the connection URL, dials with retry, and verifies
// connectivity with a ping before returning the client:
//
//	client, err := redis.Connect(ctx, redis.Config{
//		ConnectionURL: "redis://localhost:6379/0",
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	store := redis.NewStore(client)
//
// Store implements tokenstore.Store with the same degrade-to-absent read
// semantics as the in-process implementations: any Redis failure on the read
// path reads as "token absent", which downstream equals logged out.
package redis
