package memocache

import (
	"context"
	"time"

	c "github.com/unkn0wn-root/memocache/codec"
)

// Cache is the adapter facade. V is the caller's value type; serialization
// is handled by a pluggable Codec[V] (JSON when unset).
//
// Both operations return immediately; outcomes arrive through the returned
// Future. Every outcome, success or failure, is also emitted to the
// configured EventSink, so fire-and-forget writes stay observable.
type Cache[V any] interface {
	// Get reads the value memoized under logicalKey. The transport call is
	// raced against Config.ReadTimeout; failure kinds are
	// {Timeout, Transport, NotFound, Decode}.
	Get(ctx context.Context, logicalKey string) *Future[V]

	// Set memoizes value under logicalKey for ttl (<= 0 => DefaultTTL).
	// Values the Absent predicate reports as absent settle immediately with
	// no transport call and no event. Failure kinds are
	// {Encode, Transport, WriteFailed}. There is no write deadline: a hung
	// transport hangs the future.
	Set(ctx context.Context, logicalKey string, value V, ttl time.Duration) *Future[Ack]

	// NormalizedKey exposes the transport-level key for logicalKey under
	// this adapter's generation, mainly for debugging and log correlation.
	NormalizedKey(logicalKey string) string
}

// Options tune one adapter. Config.Servers and Registry are required;
// everything else has defaults.
type Options[V any] struct {
	Config   Config
	Registry *Registry

	Codec c.Codec[V] // nil => codec.JSON[V]
	Sink  EventSink  // nil => NopSink

	// Absent reports that the caller has nothing to cache; such Set calls
	// short-circuit. nil => nil pointers/interfaces/maps/slices are absent.
	Absent func(V) bool
}

// New constructs an adapter, resolving (or creating) its pooled transport
// through opts.Registry. Missing servers or registry fail fast here: both
// indicate a programming error, not a runtime condition.
func New[V any](opts Options[V]) (Cache[V], error) {
	return newAdapter[V](opts)
}
