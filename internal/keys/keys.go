// Package keys derives transport-level cache keys.
package keys

import (
	"crypto/sha512"
	"encoding/hex"
	"strconv"
)

// Normalize maps (logicalKey, generation) to the transport key: lowercase
// hex SHA-512 over the UTF-8 bytes of "g<generation>:<logicalKey>".
// Deterministic and pure; an empty logical key is valid input.
//
// The fixed 128-char output sidesteps key-length and charset limits of the
// transport, and embedding the generation invalidates every previously
// stored entry the moment the generation is bumped.
func Normalize(logicalKey string, generation uint64) string {
	h := sha512.New()
	h.Write([]byte("g"))
	h.Write([]byte(strconv.FormatUint(generation, 10)))
	h.Write([]byte(":"))
	h.Write([]byte(logicalKey))
	return hex.EncodeToString(h.Sum(nil))
}
