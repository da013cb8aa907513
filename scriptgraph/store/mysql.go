package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	_ "github.com/go-sql-driver/mysql"
)

// MySQLStore is a MySQL/MariaDB-backed Store, for hosts that want saved
// scripts shared across multiple processes or survived across deployments.
type MySQLStore struct {
	db    *sql.DB
	loads singleflight.Group
}

// NewMySQLStore opens a MySQL connection using dsn (see the go-sql-driver/
// mysql DSN format) and ensures the scripts table exists.
func NewMySQLStore(dsn string) (*MySQLStore, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("scriptgraph/store: open mysql: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx := context.Background()
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("scriptgraph/store: ping mysql: %w", err)
	}

	s := &MySQLStore{db: db}
	if err := s.createTable(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *MySQLStore) createTable(ctx context.Context) error {
	const ddl = `
		CREATE TABLE IF NOT EXISTS scripts (
			name         VARCHAR(255) NOT NULL PRIMARY KEY,
			data         LONGBLOB NOT NULL,
			content_hash CHAR(64) NOT NULL,
			revision     CHAR(36) NOT NULL,
			saved_at     TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
		) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4 COLLATE=utf8mb4_unicode_ci`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("scriptgraph/store: create scripts table: %w", err)
	}
	return nil
}

func (s *MySQLStore) SaveScript(ctx context.Context, name string, data []byte) error {
	const q = `
		INSERT INTO scripts (name, data, content_hash, revision)
		VALUES (?, ?, ?, ?)
		ON DUPLICATE KEY UPDATE data = VALUES(data), content_hash = VALUES(content_hash), revision = VALUES(revision)`
	if _, err := s.db.ExecContext(ctx, q, name, data, contentHash(data), uuid.New().String()); err != nil {
		return fmt.Errorf("scriptgraph/store: save script %q: %w", name, err)
	}
	return nil
}

func (s *MySQLStore) LoadScript(ctx context.Context, name string) ([]byte, error) {
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

func (s *MySQLStore) ListScripts(ctx context.Context) ([]ScriptInfo, error) {
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

func (s *MySQLStore) DeleteScript(ctx context.Context, name string) error {
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

// Close releases the underlying connection pool.
func (s *MySQLStore) Close() error {
	return s.db.Close()
}
