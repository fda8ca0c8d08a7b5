// Package factory builds the kv.Store a host configured. It is the only
// place driver names are interpreted; repositories never know which backend
// they persist to.
package factory

import (
	"fmt"

	"github.com/daybook-io/daybook-core/config"
	"github.com/daybook-io/daybook-core/kv"
	"github.com/daybook-io/daybook-core/kv/sqlite"
)

// NewStore returns the kv.Store selected by cfg.StoreDriver.
func NewStore(cfg *config.Config) (kv.Store, error) {
	switch cfg.StoreDriver {
	case "memory":
		return kv.NewMemoryStore(), nil
	case "file":
		return kv.NewFileStore(cfg.DataDir)
	case "sqlite":
		return sqlite.NewSqliteStore(cfg.SQLitePath)
	default:
		return nil, fmt.Errorf("factory: unsupported store driver %q", cfg.StoreDriver)
	}
}
