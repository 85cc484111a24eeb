package cart

import (
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

// Storage is a string key/value slot store, the server-side stand-in for
// browser local storage.
type Storage interface {
	Get(key string) (string, bool, error)
	Set(key, value string) error
}

// SQLStorage keeps slots in a local sqlite file.
type SQLStorage struct {
	db *sqlx.DB
}

const localStorageSchema = `
CREATE TABLE IF NOT EXISTS local_storage (
	slot TEXT PRIMARY KEY,
	payload TEXT NOT NULL,
	updated_at TEXT NOT NULL
)`

func NewSQLStorage(path string) (*SQLStorage, error) {
	db, err := sqlx.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open local storage %s: %w", path, err)
	}
	if _, err := db.Exec(localStorageSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create local_storage table: %w", err)
	}
	return &SQLStorage{db: db}, nil
}

func (s *SQLStorage) Get(key string) (string, bool, error) {
	var payload string
	err := s.db.Get(&payload, `SELECT payload FROM local_storage WHERE slot = ?`, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %s: %w", key, err)
	}
	return payload, true, nil
}

func (s *SQLStorage) Set(key, value string) error {
	const q = `
		INSERT INTO local_storage (slot, payload, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET
			payload = excluded.payload,
			updated_at = excluded.updated_at
	`
	if _, err := s.db.Exec(q, key, value, time.Now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("write slot %s: %w", key, err)
	}
	return nil
}

func (s *SQLStorage) Close() error {
	return s.db.Close()
}

// MemoryStorage is a Storage that lives as long as the process.
type MemoryStorage struct {
	mu    sync.RWMutex
	slots map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{slots: make(map[string]string)}
}

func (m *MemoryStorage) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.slots[key]
	return v, ok, nil
}

func (m *MemoryStorage) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[key] = value
	return nil
}
