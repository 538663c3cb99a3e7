package memocache

import (
	"context"
	"errors"
	"sync"

	"github.com/unkn0wn-root/memocache/transport"
)

// Registry pools transports by configuration fingerprint so that adapters
// constructed repeatedly (e.g. once per request) with the same Config reuse
// one connection instead of dialing anew.
//
// Entries live for the registry's lifetime; the pool only grows with the
// number of distinct configurations, which in practice is small and static
// per process. There is no eviction.
type Registry struct {
	factory transport.Factory

	mu      sync.Mutex
	clients map[string]transport.Transport
}

// NewRegistry builds a registry around a transport factory, typically
// redis.Factory(). One registry per process is the intended shape; pass it
// to every adapter whose transports should be shared.
func NewRegistry(factory transport.Factory) *Registry {
	return &Registry{
		factory: factory,
		clients: make(map[string]transport.Transport),
	}
}

// Acquire returns the pooled transport for cfg, constructing it on first
// use. The mutex spans the construction step, so concurrent first-time
// acquisition for one fingerprint yields a single transport instance.
//
// The first construction emits one INITIALIZED event to sink. No request is
// in flight at that point, so the event carries no key and no timers.
func (r *Registry) Acquire(cfg Config, sink EventSink) (transport.Transport, error) {
	fp := cfg.fingerprint()

	r.mu.Lock()
	if t, ok := r.clients[fp]; ok {
		r.mu.Unlock()
		return t, nil
	}
	t, err := r.factory(cfg.Servers, cfg.TransportOptions)
	if err != nil {
		r.mu.Unlock()
		return nil, err
	}
	r.clients[fp] = t
	r.mu.Unlock()

	// Emit after unlocking: a slow sink must not serialize Acquire calls
	// for unrelated fingerprints.
	sink.Emit(Event{Type: EventInitialized})
	return t, nil
}

// Len reports the number of pooled transports.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.clients)
}

// Close closes every pooled transport. Meant for process shutdown; adapters
// must not be used afterwards.
func (r *Registry) Close(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errs []error
	for fp, t := range r.clients {
		if err := t.Close(ctx); err != nil {
			errs = append(errs, err)
		}
		delete(r.clients, fp)
	}
	return errors.Join(errs...)
}
