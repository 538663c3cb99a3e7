package memocache

import (
	"context"
	"fmt"
	"reflect"
	"time"

	c "github.com/unkn0wn-root/memocache/codec"
	"github.com/unkn0wn-root/memocache/internal/keys"
	"github.com/unkn0wn-root/memocache/transport"
)

type adapter[V any] struct {
	cfg    Config
	tr     transport.Transport
	codec  c.Codec[V]
	sink   EventSink
	absent func(V) bool
}

func newAdapter[V any](opts Options[V]) (*adapter[V], error) {
	if len(opts.Config.Servers) == 0 {
		return nil, fmt.Errorf("memocache: at least one server address is required")
	}
	if opts.Registry == nil {
		return nil, fmt.Errorf("memocache: registry is required")
	}

	a := &adapter[V]{cfg: opts.Config.withDefaults()}
	a.codec = coalesce[c.Codec[V]](opts.Codec, c.JSON[V]{})
	a.sink = coalesce[EventSink](opts.Sink, NopSink{})

	if opts.Absent != nil {
		a.absent = opts.Absent
	} else {
		a.absent = defaultAbsent[V]
	}

	tr, err := opts.Registry.Acquire(a.cfg, a.sink)
	if err != nil {
		return nil, fmt.Errorf("memocache: acquire transport: %w", err)
	}
	a.tr = tr
	return a, nil
}

func (a *adapter[V]) NormalizedKey(logicalKey string) string {
	return keys.Normalize(logicalKey, a.cfg.Generation)
}

// fetched is what the transport goroutine hands to the race arbiter.
type fetched struct {
	raw []byte
	ok  bool
	err error
	net time.Duration
}

func (a *adapter[V]) Get(ctx context.Context, logicalKey string) *Future[V] {
	f := newFuture[V]()
	nk := keys.Normalize(logicalKey, a.cfg.Generation)
	a.sink.Emit(Event{Type: EventReadStart, Key: logicalKey, NormalizedKey: nk})

	start := time.Now()

	// Buffered so the losing fetch can always deliver and exit; its result
	// is simply never received.
	ch := make(chan fetched, 1)
	go func() {
		ns := time.Now()
		raw, ok, err := a.tr.Fetch(ctx, nk)
		ch <- fetched{raw: raw, ok: ok, err: err, net: time.Since(ns)}
	}()

	go func() {
		timer := time.NewTimer(a.cfg.ReadTimeout)
		defer timer.Stop()

		var zero V
		select {
		case r := <-ch:
			a.settleRead(f, logicalKey, nk, r, start)
		case <-timer.C:
			// No cancellation of the in-flight fetch: it runs to completion
			// in the background and its result is discarded above.
			a.sink.Emit(Event{
				Type:          EventReadTimeout,
				Key:           logicalKey,
				NormalizedKey: nk,
				Timers:        Timers{Total: time.Since(start)},
			})
			f.settle(zero, &Error{Kind: KindTimeout, Key: logicalKey, NormalizedKey: nk})
		}
	}()
	return f
}

func (a *adapter[V]) settleRead(f *Future[V], key, nk string, r fetched, start time.Time) {
	timers := Timers{Network: r.net, Total: time.Since(start)}
	var zero V
	switch {
	case r.err != nil:
		a.sink.Emit(Event{Type: EventReadError, Key: key, NormalizedKey: nk, Timers: timers, Err: r.err})
		f.settle(zero, &Error{Kind: KindTransport, Key: key, NormalizedKey: nk, Err: r.err})
	case !r.ok:
		a.sink.Emit(Event{Type: EventReadKeyNotFound, Key: key, NormalizedKey: nk, Timers: timers})
		f.settle(zero, &Error{Kind: KindNotFound, Key: key, NormalizedKey: nk})
	default:
		v, err := a.codec.Decode(r.raw)
		if err != nil {
			// Event carries the raw payload for diagnosis.
			a.sink.Emit(Event{Type: EventParseFailed, Key: key, NormalizedKey: nk, Timers: timers, Data: r.raw, Err: err})
			f.settle(zero, &Error{Kind: KindDecode, Key: key, NormalizedKey: nk, Err: err})
			return
		}
		a.sink.Emit(Event{Type: EventReadDone, Key: key, NormalizedKey: nk, Timers: timers, Data: r.raw})
		f.settle(v, nil)
	}
}

func (a *adapter[V]) Set(ctx context.Context, logicalKey string, value V, ttl time.Duration) *Future[Ack] {
	f := newFuture[Ack]()

	// Caller has nothing to cache: deliberate short-circuit, not an error.
	// Zero transport calls, zero events.
	if a.absent(value) {
		f.settle(Ack{}, nil)
		return f
	}

	nk := keys.Normalize(logicalKey, a.cfg.Generation)
	if ttl <= 0 {
		ttl = a.cfg.DefaultTTL
	}
	a.sink.Emit(Event{Type: EventWriteStart, Key: logicalKey, NormalizedKey: nk, TTL: ttl})

	start := time.Now()
	payload, err := a.codec.Encode(value)
	if err != nil {
		a.sink.Emit(Event{Type: EventEncodeFailed, Key: logicalKey, NormalizedKey: nk, Err: err})
		f.settle(Ack{}, &Error{Kind: KindEncode, Key: logicalKey, NormalizedKey: nk, Err: err})
		return f
	}

	go func() {
		ns := time.Now()
		ok, err := a.tr.Store(ctx, nk, payload, ttl)
		timers := Timers{Network: time.Since(ns), Total: time.Since(start)}
		switch {
		case err != nil:
			a.sink.Emit(Event{Type: EventWriteError, Key: logicalKey, NormalizedKey: nk, Timers: timers, Err: err})
			f.settle(Ack{}, &Error{Kind: KindTransport, Key: logicalKey, NormalizedKey: nk, Err: err})
		case !ok:
			a.sink.Emit(Event{Type: EventWriteFailed, Key: logicalKey, NormalizedKey: nk, Timers: timers, Data: payload, TTL: ttl})
			f.settle(Ack{}, &Error{Kind: KindWriteFailed, Key: logicalKey, NormalizedKey: nk})
		default:
			a.sink.Emit(Event{Type: EventWriteDone, Key: logicalKey, NormalizedKey: nk, Timers: timers, Data: payload, TTL: ttl})
			f.settle(Ack{}, nil)
		}
	}()
	return f
}

// defaultAbsent treats nil-able zero values as "nothing to cache": nil
// pointers, interfaces, maps, slices, funcs and channels.
func defaultAbsent[V any](v V) bool {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() {
		return true // V is an interface type holding nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
