// Package kvtest exercises a minimal compliance suite against a kv.Store
// implementation. Drivers run it from their own tests with a clean,
// isolated store.
package kvtest

import (
	"bytes"
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/daybook-io/daybook-core/kv"
)

// Run checks the Store contract: absent keys read as (nil, nil), Set is a
// wholesale overwrite, Delete is idempotent.
func Run(t *testing.T, makeStore func(t *testing.T) kv.Store) {
	t.Helper()

	s := makeStore(t)
	ctx := context.Background()
	key := "c-" + uuid.NewString()

	// Absent key
	if v, err := s.Get(ctx, key); err != nil || v != nil {
		t.Fatalf("Get absent: v=%v err=%v", v, err)
	}
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete absent: %v", err)
	}

	// Set then Get
	want := []byte(`[{"id":"1"}]`)
	if err := s.Set(ctx, key, want); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || !bytes.Equal(got, want) {
		t.Fatalf("Get after Set: got=%q err=%v", got, err)
	}

	// Overwrite
	want2 := []byte(`[]`)
	if err := s.Set(ctx, key, want2); err != nil {
		t.Fatalf("Set overwrite: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || !bytes.Equal(got, want2) {
		t.Fatalf("Get after overwrite: got=%q err=%v", got, err)
	}

	// Empty value is a value, not absence
	if err := s.Set(ctx, key, []byte{}); err != nil {
		t.Fatalf("Set empty: %v", err)
	}
	if got, err := s.Get(ctx, key); err != nil || got == nil || len(got) != 0 {
		t.Fatalf("Get empty value: got=%v err=%v", got, err)
	}

	// Delete then Get
	if err := s.Delete(ctx, key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if v, err := s.Get(ctx, key); err != nil || v != nil {
		t.Fatalf("Get after Delete: v=%v err=%v", v, err)
	}

	// Keys are independent
	other := "c-" + uuid.NewString()
	if err := s.Set(ctx, other, []byte("x")); err != nil {
		t.Fatalf("Set other: %v", err)
	}
	if v, err := s.Get(ctx, key); err != nil || v != nil {
		t.Fatalf("Get deleted after writing other key: v=%v err=%v", v, err)
	}
}
