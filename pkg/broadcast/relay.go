package broadcast

import (
	"context"
	"sync"
)

// Relay fans published values out to all active subscribers.
// The zero value is not usable; create relays with NewRelay.
type Relay[T any] struct {
	mu     sync.Mutex
	subs   map[*Subscriber[T]]struct{}
	closed bool
}

// NewRelay creates an empty relay with no subscribers.
func NewRelay[T any]() *Relay[T] {
	return &Relay[T]{
		subs: make(map[*Subscriber[T]]struct{}),
	}
}

// Publish delivers v to every active subscriber in subscription-queue order.
// Publishing never blocks; delivery to each subscriber happens asynchronously
// but preserves the order of Publish calls. Publishing to a closed relay is a
// no-op.
func (r *Relay[T]) Publish(v T) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	for sub := range r.subs {
		sub.push(v)
	}
}

// Subscribe registers a new subscriber. Any initial values are queued before
// the subscriber can observe subsequent Publish calls, which lets callers
// seed the subscription with the current state.
//
// The subscription is released when ctx is cancelled or Close is called on
// the returned subscriber.
func (r *Relay[T]) Subscribe(ctx context.Context, initial ...T) *Subscriber[T] {
	sub := &Subscriber[T]{
		out:    make(chan T),
		notify: make(chan struct{}, 1),
		stop:   make(chan struct{}),
	}
	sub.queue = append(sub.queue, initial...)

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		// Deliver the seed values, then terminate the subscription.
		go func() {
			defer close(sub.out)
			for _, v := range initial {
				select {
				case sub.out <- v:
				case <-ctx.Done():
					return
				}
			}
		}()
		return sub
	}
	r.subs[sub] = struct{}{}
	r.mu.Unlock()

	go func() {
		defer r.remove(sub)
		sub.run(ctx)
	}()

	return sub
}

// Close terminates the relay and all active subscriptions.
// Safe to call multiple times.
func (r *Relay[T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	subs := make([]*Subscriber[T], 0, len(r.subs))
	for sub := range r.subs {
		subs = append(subs, sub)
	}
	r.mu.Unlock()

	for _, sub := range subs {
		sub.Close()
	}
}

func (r *Relay[T]) remove(sub *Subscriber[T]) {
	r.mu.Lock()
	delete(r.subs, sub)
	r.mu.Unlock()
}

// Subscriber receives values published to a relay in order and without loss.
type Subscriber[T any] struct {
	mu     sync.Mutex
	queue  []T
	out    chan T
	notify chan struct{}
	stop   chan struct{}
	once   sync.Once
}

// Receive returns the channel of delivered values. The channel is closed when
// the subscription ends.
func (s *Subscriber[T]) Receive() <-chan T {
	return s.out
}

// Close ends the subscription. Values still queued are discarded.
// Safe to call multiple times.
func (s *Subscriber[T]) Close() {
	s.once.Do(func() {
		close(s.stop)
	})
}

// push appends v to the pending queue and wakes the drain goroutine.
func (s *Subscriber[T]) push(v T) {
	s.mu.Lock()
	s.queue = append(s.queue, v)
	s.mu.Unlock()

	select {
	case s.notify <- struct{}{}:
	default:
	}
}

// run drains the pending queue into the out channel until the subscription
// ends. Queue order is delivery order.
func (s *Subscriber[T]) run(ctx context.Context) {
	defer close(s.out)

	for {
		s.mu.Lock()
		var (
			v  T
			ok bool
		)
		if len(s.queue) > 0 {
			v, ok = s.queue[0], true
			s.queue = s.queue[1:]
		}
		s.mu.Unlock()

		if !ok {
			select {
			case <-s.notify:
				continue
			case <-s.stop:
				return
			case <-ctx.Done():
				return
			}
		}

		select {
		case s.out <- v:
		case <-s.stop:
			return
		case <-ctx.Done():
			return
		}
	}
}
