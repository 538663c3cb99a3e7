package codec

import "encoding/json"

// JSON serializes values as JSON text. The zero value is ready to use.
// This is the adapter's default codec: payloads stay human-readable in the
// cache server and in emitted events.
type JSON[V any] struct{}

func (JSON[V]) Encode(v V) ([]byte, error) { return json.Marshal(v) }
func (JSON[V]) Decode(b []byte) (V, error) {
	var v V
	err := json.Unmarshal(b, &v)
	return v, err
}
