// Package codec converts cached values V to and from the bytes stored in
// the transport. The adapter treats codecs as a black box; JSON is the
// default.
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}
