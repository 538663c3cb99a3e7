// Package transport defines the cache-server capability memocache delegates
// network I/O to.
//
// Implementations MUST be byte-for-byte transparent: Fetch must return
// exactly the []byte previously passed to Store for the same key (no
// prepended metadata, no re-encoding). They must also be safe for concurrent
// Fetch/Store calls: one transport instance is shared by every adapter with
// an equal configuration and by all in-flight operations.
package transport

import (
	"context"
	"time"
)

// Transport is a minimal byte store with TTLs.
type Transport interface {
	// Fetch returns (value, true, nil) on hit; (nil, false, nil) on miss.
	// IO/remote failures return (nil, false, err).
	Fetch(ctx context.Context, key string) ([]byte, bool, error)

	// Store writes value under key with the given TTL. ok=false means the
	// store completed without error but did not acknowledge the write
	// (eviction pressure, replica refusal).
	Store(ctx context.Context, key string, value []byte, ttl time.Duration) (ok bool, err error)

	// Close releases resources.
	Close(ctx context.Context) error
}

// Factory constructs a transport for a server list plus opaque options.
// The Registry calls it at most once per configuration fingerprint.
type Factory func(servers []string, options map[string]string) (Transport, error)
