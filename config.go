package memocache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"sort"
	"time"
)

// Config describes one cache target. It is immutable after the adapter is
// constructed; adapters built from structurally equal configs share one
// pooled transport (see Registry).
type Config struct {
	// Servers are the cache server addresses ("host:port"). Required.
	Servers []string

	// DefaultTTL applies to Set calls with ttl <= 0. 0 => 24h.
	DefaultTTL time.Duration

	// ReadTimeout is the client-side deadline raced against Get's transport
	// call. 0 => 100ms. Writes are not subject to it.
	ReadTimeout time.Duration

	// Generation is baked into every normalized key; bumping it invalidates
	// all previously stored entries without deleting them. 0 => 1.
	Generation uint64

	// TransportOptions is an opaque pass-through to the transport factory
	// (credentials, pool sizing). Part of the pool identity.
	TransportOptions map[string]string
}

// withDefaults returns a copy with zero fields replaced by their defaults.
func (c Config) withDefaults() Config {
	c.DefaultTTL = coalesce(c.DefaultTTL, 24*time.Hour)
	c.ReadTimeout = coalesce(c.ReadTimeout, 100*time.Millisecond)
	c.Generation = coalesce(c.Generation, uint64(1))
	return c
}

// fingerprint is a canonical digest over every field; it keys the Registry
// pool. Every string is length-prefixed before it enters the hash, so field
// boundaries survive whatever bytes servers or option values carry, and
// TransportOptions are folded in sorted key order so map iteration order
// cannot split the pool.
func (c Config) fingerprint() string {
	h := sha256.New()
	var u8 [8]byte
	num := func(v uint64) {
		binary.BigEndian.PutUint64(u8[:], v)
		h.Write(u8[:])
	}
	str := func(s string) {
		num(uint64(len(s)))
		h.Write([]byte(s))
	}

	num(uint64(len(c.Servers)))
	for _, s := range c.Servers {
		str(s)
	}
	num(uint64(c.DefaultTTL))
	num(uint64(c.ReadTimeout))
	num(c.Generation)

	opts := make([]string, 0, len(c.TransportOptions))
	for k := range c.TransportOptions {
		opts = append(opts, k)
	}
	sort.Strings(opts)
	num(uint64(len(opts)))
	for _, k := range opts {
		str(k)
		str(c.TransportOptions[k])
	}

	return hex.EncodeToString(h.Sum(nil))
}
