package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// PluginID keys this plugin's row in a shared plugin_data table.
const PluginID = "tmdbnote"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS plugin_data (
	plugin_id TEXT PRIMARY KEY,
	data TEXT NOT NULL,
	updated_at DATETIME NOT NULL
)`

// SQLiteBackend keeps the settings blob as one row of a SQLite table.
type SQLiteBackend struct {
	db       *sql.DB
	pluginID string
	owned    bool
}

// NewSQLiteBackend creates the table if needed and returns a backend on db.
// The caller keeps ownership of db.
func NewSQLiteBackend(db *sql.DB, pluginID string) (*SQLiteBackend, error) {
	if _, err := db.Exec(schemaSQL); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteBackend{db: db, pluginID: pluginID}, nil
}

// OpenSQLite opens (or creates) the database file at path.
func OpenSQLite(path, pluginID string) (*SQLiteBackend, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	b, err := NewSQLiteBackend(db, pluginID)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	b.owned = true
	return b, nil
}

func (b *SQLiteBackend) Load(ctx context.Context) ([]byte, error) {
	var data string
	err := b.db.QueryRowContext(ctx,
		"SELECT data FROM plugin_data WHERE plugin_id = ?", b.pluginID,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select settings: %w", err)
	}
	return []byte(data), nil
}

func (b *SQLiteBackend) Save(ctx context.Context, data []byte) error {
	_, err := b.db.ExecContext(ctx,
		`INSERT INTO plugin_data (plugin_id, data, updated_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(plugin_id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		b.pluginID, string(data), time.Now(),
	)
	if err != nil {
		return fmt.Errorf("upsert settings: %w", err)
	}
	return nil
}

// Close closes the database if the backend opened it.
func (b *SQLiteBackend) Close() error {
	if !b.owned {
		return nil
	}
	return b.db.Close()
}
