package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"

	"github.com/smarttech/storefront/dbx"
	"github.com/smarttech/storefront/logging"
	"github.com/smarttech/storefront/store/migrations"
)

// SQLiteStore keeps the channels in a local SQLite database, with a
// write-through in-memory overlay. The overlay is what makes the degradation
// contract work: once a Set or Remove has been issued, Gets observe it even
// if the durable write failed. A nil overlay entry is a removal tombstone.
type SQLiteStore struct {
	db  *sql.DB
	log logging.Logger

	mu  sync.Mutex
	mem map[string]json.RawMessage
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the provided database connection.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the SQLite database at dsn, applies the
// embedded migrations, and returns a ready store.
func Open(ctx context.Context, dsn string, log logging.Logger) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open store database: %w", err)
	}
	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to run store migrations: %w", err)
	}
	return NewSQLiteStore(db, log), nil
}

// NewSQLiteStore wraps an already-migrated database handle.
func NewSQLiteStore(db *sql.DB, log logging.Logger) *SQLiteStore {
	if log == nil {
		log = logging.NewNopLogger()
	}
	return &SQLiteStore{db: db, log: log, mem: make(map[string]json.RawMessage)}
}

// Close closes the underlying database handle.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string, dest any) bool {
	s.mu.Lock()
	raw, cached := s.mem[key]
	s.mu.Unlock()

	if cached {
		if raw == nil {
			// tombstone left by Remove
			return false
		}
		return s.decode(ctx, key, raw, dest)
	}

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM channels WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		s.log.Warn(ctx, "store read failed, falling back to default", "key", key, "error", err)
		return false
	}
	return s.decode(ctx, key, value, dest)
}

func (s *SQLiteStore) decode(ctx context.Context, key string, raw []byte, dest any) bool {
	if err := json.Unmarshal(raw, dest); err != nil {
		s.log.Warn(ctx, "store payload does not decode, falling back to default", "key", key, "error", err)
		return false
	}
	return true
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value any) {
	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Error(ctx, "store value does not serialize, write dropped", "key", key, "error", err)
		return
	}

	s.mu.Lock()
	s.mem[key] = raw
	s.mu.Unlock()

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO channels (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, string(raw))
	if err != nil {
		s.log.Warn(ctx, "storage degraded: durable write failed, keeping in-memory value", "key", key, "error", err)
	}
}

func (s *SQLiteStore) Remove(ctx context.Context, key string) {
	s.mu.Lock()
	s.mem[key] = nil
	s.mu.Unlock()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM channels WHERE key = ?`, key); err != nil {
		s.log.Warn(ctx, "storage degraded: durable delete failed, keeping in-memory tombstone", "key", key, "error", err)
	}
}

// Reset wipes every channel in a single transaction and drops the overlay.
func (s *SQLiteStore) Reset(ctx context.Context) error {
	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		_, err := tx.ExecContext(ctx, `DELETE FROM channels`)
		return err
	})
	if err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}

	s.mu.Lock()
	s.mem = make(map[string]json.RawMessage)
	s.mu.Unlock()
	return nil
}
