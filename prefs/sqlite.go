package prefs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/zero-day-ai/plistkit/plist"
)

// SQLiteStore persists preferences to a SQLite database.
// It is suitable for single-process use.
type SQLiteStore struct {
	db        *sql.DB
	namespace string

	mu     sync.RWMutex
	closed bool
}

// NewSQLiteStore opens or creates the database at path. Use ":memory:" for
// tests. Rows are scoped by namespace so several stores can share a file.
func NewSQLiteStore(path, namespace string) (*SQLiteStore, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: sqlite path cannot be empty", ErrInvalidConfig)
	}
	if namespace == "" {
		namespace = DefaultNamespace
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// Each :memory: connection is its own database.
	if path == ":memory:" {
		db.SetMaxOpenConns(1)
	} else if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}

	if _, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS prefs (
			namespace TEXT NOT NULL,
			key TEXT NOT NULL,
			value BLOB NOT NULL,
			updated_at TEXT NOT NULL,
			PRIMARY KEY (namespace, key)
		)
	`); err != nil {
		db.Close()
		return nil, fmt.Errorf("create table: %w", err)
	}

	return &SQLiteStore{db: db, namespace: namespace}, nil
}

// Get implements Store.
func (s *SQLiteStore) Get(ctx context.Context, key string) (plist.Value, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("get", key, ErrStoreClosed)
	}

	var data []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT value FROM prefs
		WHERE namespace = ? AND key = ?
	`, s.namespace, key).Scan(&data)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound(key)
	}
	if err != nil {
		return nil, storeErr("get", key, fmt.Errorf("load preference: %w", err))
	}

	v, err := Unmarshal(data)
	if err != nil {
		return nil, storeErr("get", key, err)
	}
	return v, nil
}

// Set implements Store.
func (s *SQLiteStore) Set(ctx context.Context, key string, v plist.Value) error {
	if v == nil {
		return s.Delete(ctx, key)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storeErr("set", key, ErrStoreClosed)
	}

	data, err := Marshal(v)
	if err != nil {
		return storeErr("set", key, err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO prefs (namespace, key, value, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(namespace, key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, s.namespace, key, data, time.Now().UTC().Format(time.RFC3339Nano))
	if err != nil {
		return storeErr("set", key, fmt.Errorf("save preference: %w", err))
	}
	return nil
}

// Delete implements Store.
func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storeErr("delete", key, ErrStoreClosed)
	}

	if _, err := s.db.ExecContext(ctx, `
		DELETE FROM prefs WHERE namespace = ? AND key = ?
	`, s.namespace, key); err != nil {
		return storeErr("delete", key, fmt.Errorf("delete preference: %w", err))
	}
	return nil
}

// Keys implements Store.
func (s *SQLiteStore) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return nil, storeErr("keys", "", ErrStoreClosed)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT key FROM prefs WHERE namespace = ? ORDER BY key
	`, s.namespace)
	if err != nil {
		return nil, storeErr("keys", "", fmt.Errorf("list preferences: %w", err))
	}
	defer rows.Close()

	keys := []string{}
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, storeErr("keys", "", fmt.Errorf("scan preference key: %w", err))
		}
		keys = append(keys, k)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("keys", "", fmt.Errorf("iterate preferences: %w", err))
	}
	return keys, nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
