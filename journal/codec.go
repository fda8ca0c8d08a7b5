package journal

import (
	"bytes"
	"encoding/json"
)

// Codec converts a record collection to and from its persisted form: a JSON
// array of record objects. Field names are owned by the concrete record
// type's json tags and must stay stable across versions; unknown fields are
// ignored and absent optional fields decode to their zero defaults, so
// additive schema evolution never breaks old data.
type Codec[T any] struct{}

// Encode serializes the collection. The empty collection encodes as "[]",
// never "null", so a freshly created collection round-trips.
func (Codec[T]) Encode(recs []T) ([]byte, error) {
	if recs == nil {
		recs = []T{}
	}
	buf, err := json.Marshal(recs)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// Decode parses persisted bytes back into a collection. Malformed input
// yields a DecodeError; a top-level JSON null decodes as the empty
// collection for compatibility with stores that wrote one.
func (Codec[T]) Decode(data []byte) ([]T, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return []T{}, nil
	}
	var recs []T
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, DecodeError{Err: err}
	}
	if recs == nil {
		recs = []T{}
	}
	return recs, nil
}
