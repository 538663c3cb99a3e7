package memocache

import (
	"context"
	"sync"
)

// Ack is the (empty) success value of a write future.
type Ack struct{}

// Future is a single-settlement result. Get and Set return one immediately;
// the calling goroutine is never blocked inside the adapter.
//
// Settlement happens exactly once: the read path shares one future between
// the deadline timer and the transport return, and whichever loses that race
// hits a no-op. Futures must not be constructed by callers.
type Future[V any] struct {
	once sync.Once
	done chan struct{}
	val  V
	err  error
}

func newFuture[V any]() *Future[V] {
	return &Future[V]{done: make(chan struct{})}
}

// settle records the outcome and releases waiters. Calls after the first
// are no-ops.
func (f *Future[V]) settle(v V, err error) {
	f.once.Do(func() {
		f.val, f.err = v, err
		close(f.done)
	})
}

// Done is closed once the future is settled.
func (f *Future[V]) Done() <-chan struct{} { return f.done }

// Wait blocks until settlement or ctx expiry. A ctx error abandons the wait
// only; the operation itself keeps running and stays observable via events.
func (f *Future[V]) Wait(ctx context.Context) (V, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

// Result blocks until settlement and returns the outcome.
func (f *Future[V]) Result() (V, error) {
	<-f.done
	return f.val, f.err
}
