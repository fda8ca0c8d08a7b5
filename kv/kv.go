// Package kv defines the key-value persistence contract the journal engine
// consumes, plus local implementations of it. One key holds one serialized
// record collection; the engine never enumerates keys.
package kv

import "context"

// Store exposes the three operations the engine needs. Implementations live
// in this package and under kv/<driver>/.
//
// Get returns (nil, nil) for an absent key; absence is not an error.
// Set stores the value wholesale, creating the key if needed.
// Delete removes the key; deleting an absent key is a no-op.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
