package settings

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// FileBackend keeps the settings blob in a TOML file.
type FileBackend struct {
	path string
}

// NewFileBackend creates a backend for the given file path.
func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

// Path returns the backing file path.
func (b *FileBackend) Path() string { return b.path }

// Load reads the settings file. A missing file is not an error.
func (b *FileBackend) Load(_ context.Context) ([]byte, error) {
	data, err := os.ReadFile(b.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings: %w", err)
	}
	return data, nil
}

// Save writes the settings file, creating parent directories if needed.
func (b *FileBackend) Save(_ context.Context, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(b.path), 0755); err != nil {
		return err
	}
	return os.WriteFile(b.path, data, 0644)
}

func (b *FileBackend) Close() error { return nil }

// DefaultPath returns the XDG-compliant default settings path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./tmdbnote.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "tmdbnote", "settings.toml")
}

// Discover finds the settings file.
// Search order:
//  1. TMDBNOTE_SETTINGS environment variable
//  2. ./tmdbnote.toml (current directory)
//  3. $XDG_CONFIG_HOME/tmdbnote/settings.toml
//
// When none exists the XDG path is returned so the first Save creates it.
func Discover() string {
	if envPath := os.Getenv("TMDBNOTE_SETTINGS"); envPath != "" {
		return envPath
	}
	if _, err := os.Stat("./tmdbnote.toml"); err == nil {
		return "./tmdbnote.toml"
	}
	return DefaultPath()
}

// OpenBackend picks the backend for a settings path: SQLite for
// .db/.sqlite files, TOML otherwise.
func OpenBackend(path string) (Backend, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return OpenSQLite(path, PluginID)
	default:
		return NewFileBackend(path), nil
	}
}
