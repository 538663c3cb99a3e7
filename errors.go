package memocache

import (
	"errors"
	"fmt"
)

// Kind classifies an operation failure. Every expected failure mode of Get
// and Set maps to exactly one Kind so callers can apply uniform fallback
// logic (typically: any failed Get => recompute).
type Kind uint8

const (
	KindUnknown Kind = iota
	KindTimeout      // read deadline elapsed before the transport responded
	KindTransport    // transport-level communication error
	KindNotFound     // key absent; a normal cache miss, not a fault
	KindDecode       // stored payload failed to deserialize
	KindEncode       // value failed to serialize; no write was attempted
	KindWriteFailed  // transport completed but did not acknowledge the write
)

func (k Kind) String() string {
	switch k {
	case KindTimeout:
		return "timeout"
	case KindTransport:
		return "transport"
	case KindNotFound:
		return "not_found"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	case KindWriteFailed:
		return "write_failed"
	default:
		return "unknown"
	}
}

// Error is the tagged failure value returned by Get and Set futures.
type Error struct {
	Kind          Kind
	Key           string
	NormalizedKey string
	Err           error // underlying transport/codec error, if any
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("memocache: %s %q: %v", e.Kind, e.Key, e.Err)
	}
	return fmt.Sprintf("memocache: %s %q", e.Kind, e.Key)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf extracts the failure Kind from err; KindUnknown when err is not a
// memocache failure (or is nil).
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsNotFound reports whether err is a cache miss.
func IsNotFound(err error) bool { return KindOf(err) == KindNotFound }

// IsTimeout reports whether err is a read-deadline expiry.
func IsTimeout(err error) bool { return KindOf(err) == KindTimeout }
