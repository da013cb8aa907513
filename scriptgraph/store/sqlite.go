package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	_ "modernc.org/sqlite"
)

// sqlTimestampLayout matches both SQLite's and MySQL's default TIMESTAMP
// string rendering ("YYYY-MM-DD HH:MM:SS"), so mysql.go reuses it too.
const sqlTimestampLayout = "2006-01-02 15:04:05"

// SQLiteStore is a SQLite-backed Store, for single-process hosts that want
// saved scripts to survive a restart without standing up a server. It uses
// the pure-Go modernc.org/sqlite driver, so no cgo toolchain is required.
type SQLiteStore struct {
	db    *sql.DB
	loads singleflight.Group
	mu    sync.Mutex
}

// NewSQLiteStore opens (creating if necessary) a SQLite database at path
// and ensures the scripts table exists. Pass ":memory:" for an ephemeral,
// process-local database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("scriptgraph/store: open sqlite: %w", err)
	}

	// SQLite allows exactly one writer; serialize through a single
	// connection rather than letting database/sql pool writers that would
	// just contend on the file lock anyway.
	db.SetMaxOpenConns(1)

	ctx := context.Background()
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("scriptgraph/store: %s: %w", pragma, err)
		}
	}

	s := &SQLiteStore{db: db}
	if err := s.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) createTable(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS scripts (
			name         TEXT PRIMARY KEY,
			data         BLOB NOT NULL,
			content_hash TEXT NOT NULL,
			revision     TEXT NOT NULL,
			saved_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("scriptgraph/store: create scripts table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) SaveScript(ctx context.Context, name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	const q = `
		INSERT INTO scripts (name, data, content_hash, revision, saved_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(name) DO UPDATE SET
			data = excluded.data,
			content_hash = excluded.content_hash,
			revision = excluded.revision,
			saved_at = excluded.saved_at`
	if _, err := s.db.ExecContext(ctx, q, name, data, contentHash(data), uuid.New().String()); err != nil {
		return fmt.Errorf("scriptgraph/store: save script %q: %w", name, err)
	}
	return nil
}

func (s *SQLiteStore) LoadScript(ctx context.Context, name string) ([]byte, error) {
	v, err, _ := s.loads.Do(name, func() (interface{}, error) {
		var data []byte
		row := s.db.QueryRowContext(ctx, "SELECT data FROM scripts WHERE name = ?", name)
		if err := row.Scan(&data); err != nil {
			if err == sql.ErrNoRows {
				return nil, ErrNotFound
			}
			return nil, fmt.Errorf("scriptgraph/store: load script %q: %w", name, err)
		}
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]byte), nil
}

func (s *SQLiteStore) ListScripts(ctx context.Context) ([]ScriptInfo, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name, content_hash, revision, saved_at FROM scripts ORDER BY name ASC")
	if err != nil {
		return nil, fmt.Errorf("scriptgraph/store: list scripts: %w", err)
	}
	defer rows.Close()

	var infos []ScriptInfo
	for rows.Next() {
		var name, hash, revision, savedAt string
		if err := rows.Scan(&name, &hash, &revision, &savedAt); err != nil {
			return nil, fmt.Errorf("scriptgraph/store: scan script row: %w", err)
		}
		t, _ := time.Parse(sqlTimestampLayout, savedAt)
		infos = append(infos, ScriptInfo{Name: name, Hash: hash, Revision: revision, SavedAt: t})
	}
	return infos, rows.Err()
}

func (s *SQLiteStore) DeleteScript(ctx context.Context, name string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM scripts WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("scriptgraph/store: delete script %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("scriptgraph/store: delete script %q: %w", name, err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// Close releases the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
