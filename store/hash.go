package store

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// ElementKey computes the content-addressed key of a structural element:
// SHA-256 over its canonical JSON serialization, hex-encoded. Struct-tag
// field order makes the serialization deterministic, so identical content
// always yields an identical key; any mutation changes the key on the next
// computation.
//
// If serialization fails the digest of the empty string is used. That makes
// two unserializable elements indistinguishable by key; the risk is carried,
// not masked.
func ElementKey(v any) Key {
	data, err := json.Marshal(v)
	if err != nil {
		data = nil
	}
	sum := sha256.Sum256(data)
	return Key(hex.EncodeToString(sum[:]))
}

// canonicalJSON returns the element's canonical JSON text, the same bytes
// ElementKey digests. Serialization failure yields the empty string.
func canonicalJSON(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
