package kv_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-io/daybook-core/kv"
	"github.com/daybook-io/daybook-core/kv/kvtest"
)

func TestMemoryStoreCompliance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		return kv.NewMemoryStore()
	})
}

func TestFileStoreCompliance(t *testing.T) {
	kvtest.Run(t, func(t *testing.T) kv.Store {
		s, err := kv.NewFileStore(t.TempDir())
		require.NoError(t, err)
		return s
	})
}

func TestMemoryStoreReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s := kv.NewMemoryStore()

	val := []byte("abc")
	require.NoError(t, s.Set(ctx, "k", val))
	val[0] = 'X' // caller mutating its buffer must not affect the store

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), got)

	got[0] = 'Y' // and mutating the read result must not either
	again, err := s.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, []byte("abc"), again)
}

func TestFileStorePersistsAcrossInstances(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s1, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	require.NoError(t, s1.Set(ctx, "diary", []byte(`[{"id":"1"}]`)))

	s2, err := kv.NewFileStore(dir)
	require.NoError(t, err)
	got, err := s2.Get(ctx, "diary")
	require.NoError(t, err)
	assert.Equal(t, `[{"id":"1"}]`, string(got))
}

func TestFileStoreRejectsPathEscapes(t *testing.T) {
	ctx := context.Background()
	s, err := kv.NewFileStore(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", ".", "..", "a/b", `a\b`} {
		_, err := s.Get(ctx, key)
		assert.Error(t, err, "key %q", key)
		assert.Error(t, s.Set(ctx, key, []byte("x")), "key %q", key)
	}
}

func TestFileStoreLeavesNoTempFiles(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	s, err := kv.NewFileStore(dir)
	require.NoError(t, err)

	require.NoError(t, s.Set(ctx, "diary", []byte("[]")))
	require.NoError(t, s.Set(ctx, "diary", []byte(`[{"id":"1"}]`)))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "diary.json", filepath.Base(entries[0].Name()))
}
