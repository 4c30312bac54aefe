// Package async provides a minimal future primitive for fire-and-forget
// operations whose completion and outcome still need to be observable.
//
// The SDK uses it for background work that must outlive the call that started
// it, such as the profile fetch that follows a successful login or token
// refresh. The caller gets a *Future back and can wait on it, poll it, or
// ignore it entirely.
//
// Basic usage:
//
//	future := async.Run(ctx, func(ctx context.Context) error {
//		return loadProfile(ctx)
//	})
//
//	// Do other work...
//
//	if err := future.Await(); err != nil {
//		log.Println("background load failed:", err)
//	}
//
// Waiting with a timeout:
//
//	if err := future.AwaitWithTimeout(time.Second); errors.Is(err, async.ErrTimeout) {
//		log.Println("still running")
//	}
//
// All operations are safe for concurrent use. Context cancellation is checked
// before the function starts, so a pre-cancelled context never spawns work.
package async
