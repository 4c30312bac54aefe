// Package broadcast provides a generic in-memory fan-out relay with lossless,
// ordered delivery to every subscriber.
//
// Each subscriber owns an unbounded queue drained by a dedicated goroutine, so
// a slow consumer delays only itself: publishers never block and no subscriber
// ever misses an intermediate value. This is deliberately stricter than
// drop-on-full pub/sub buses; the relay carries state transitions (for example
// an authentication flag) where observing every change in emission order is
// part of the contract.
//
// Usage:
//
//	relay := broadcast.NewRelay[bool]()
//	defer relay.Close()
//
//	ctx, cancel := context.WithCancel(context.Background())
//	defer cancel()
//
//	sub := relay.Subscribe(ctx, false) // seeded with the current value
//	go func() {
//		for v := range sub.Receive() {
//			fmt.Println("got:", v)
//		}
//	}()
//
//	relay.Publish(true)
//
// Subscriptions end when their context is cancelled, when Close is called on
// the subscriber, or when the relay itself is closed; in every case the
// receive channel is closed so range loops terminate.
//
// All types are safe for concurrent use.
package broadcast
