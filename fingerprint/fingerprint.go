// Package fingerprint computes stable BLAKE3 digests for diagnostics using
// canonical JSON serialization.
package fingerprint

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"fmt"

	"lukechampine.com/blake3"
)

// CanonicalJSON encodes v with object keys sorted at every depth. Struct
// fields are reordered by their JSON names, so equal values always encode to
// the same bytes regardless of declaration or insertion order.
func CanonicalJSON(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoding payload: %w", err)
	}

	// Decoding into generic maps drops struct field order; encoding/json
	// writes map keys sorted. UseNumber keeps numbers byte-for-byte.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var generic any
	if err := dec.Decode(&generic); err != nil {
		return nil, fmt.Errorf("decoding payload: %w", err)
	}

	return json.Marshal(generic)
}

// Of returns the hex digest of kind followed by a newline and the canonical
// JSON of payload.
func Of(kind string, payload any) (string, error) {
	canonical, err := CanonicalJSON(payload)
	if err != nil {
		return "", err
	}

	h := blake3.New(32, nil)
	h.Write([]byte(kind))
	h.Write([]byte{'\n'})
	h.Write(canonical)
	return hex.EncodeToString(h.Sum(nil)), nil
}
