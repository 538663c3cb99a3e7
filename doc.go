// Package memocache is a thin adapter between an application's request
// pipeline and a distributed key-value cache, used to memoize expensive
// computed results (upstream API responses, rendered fragments) under a
// caller-supplied logical key.
//
// Components:
//   - Transport: byte store with TTL behind the wire (Redis by default;
//     BigCache/Ristretto for in-process deployments).
//   - Codec[V]: (de)serializes V <-> []byte (JSON by default).
//   - Registry: process-scoped pool mapping a configuration fingerprint to
//     one shared transport, so per-request adapter construction never opens
//     a new connection.
//   - EventSink: receives one diagnostic event per operation outcome;
//     purely observational, never on the control path.
//
// Keys:
//
//	sha512("g<generation>:<logicalKey>") as lowercase hex
//
// Fixed-length keys sidestep transport key-length/charset limits; baking the
// generation into the key means bumping Config.Generation invalidates every
// stored entry without touching the store.
//
// Reads race the transport against Config.ReadTimeout and settle exactly
// once; a fetch that loses the race keeps running and its result is
// discarded. Writes carry no deadline of their own: if the transport hangs,
// the write future hangs with it.
package memocache
