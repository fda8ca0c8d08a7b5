// Package sqlite implements kv.Store on a single-table SQLite database, for
// hosts that keep app data in one db file rather than loose JSON files.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
)

const ddl = `CREATE TABLE IF NOT EXISTS Collections (
	Key   TEXT PRIMARY KEY,
	Value BLOB NOT NULL
)`

// SqliteStore implements kv.Store over one Collections table.
type SqliteStore struct {
	db *sql.DB
}

// NewSqliteStore opens (or creates) the database file and ensures the schema.
func NewSqliteStore(path string) (*SqliteStore, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}
	return NewSqliteStoreWithDB(db)
}

// NewSqliteStoreWithDB wires the store over an existing connection (used by
// the factory and by tests running against an in-memory database).
func NewSqliteStoreWithDB(db *sql.DB) (*SqliteStore, error) {
	if _, err := db.Exec(ddl); err != nil {
		return nil, err
	}
	return &SqliteStore{db: db}, nil
}

// DB exposes the underlying connection so a host can share it.
func (s *SqliteStore) DB() *sql.DB { return s.db }

// Close closes the underlying connection.
func (s *SqliteStore) Close() error { return s.db.Close() }

func (s *SqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT Value FROM Collections WHERE Key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func (s *SqliteStore) Set(ctx context.Context, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO Collections (Key, Value) VALUES (?, ?)
		 ON CONFLICT(Key) DO UPDATE SET Value = excluded.Value`, key, value)
	return err
}

func (s *SqliteStore) Delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM Collections WHERE Key = ?`, key)
	return err
}
