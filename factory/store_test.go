package factory_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/daybook-io/daybook-core/config"
	"github.com/daybook-io/daybook-core/factory"
)

func TestNewStoreDrivers(t *testing.T) {
	ctx := context.Background()

	cases := []*config.Config{
		{StoreDriver: "memory", Timezone: "UTC"},
		{StoreDriver: "file", DataDir: t.TempDir(), Timezone: "UTC"},
		{StoreDriver: "sqlite", SQLitePath: filepath.Join(t.TempDir(), "app.db"), Timezone: "UTC"},
	}

	for _, cfg := range cases {
		t.Run(cfg.StoreDriver, func(t *testing.T) {
			require.NoError(t, cfg.ResolveDefaults())
			s, err := factory.NewStore(cfg)
			require.NoError(t, err)

			require.NoError(t, s.Set(ctx, "k", []byte("v")))
			got, err := s.Get(ctx, "k")
			require.NoError(t, err)
			assert.Equal(t, "v", string(got))
		})
	}
}

func TestNewStoreRejectsUnknownDriver(t *testing.T) {
	_, err := factory.NewStore(&config.Config{StoreDriver: "redis"})
	assert.Error(t, err)
}
