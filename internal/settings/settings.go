// Package settings persists the plugin settings and hands out immutable
// snapshots of them.
package settings

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"sync"

	"github.com/BurntSushi/toml"
)

// Settings is the persisted plugin configuration.
type Settings struct {
	APIKey           string `toml:"api_key"`
	OriginalLanguage string `toml:"original_language"` // stored, never read
	Language         string `toml:"language"`
	OverviewLength   int    `toml:"overview_length"`
	FolderLocation   string `toml:"folder_location"`
}

// Defaults returns the settings used on first run.
func Defaults() Settings {
	return Settings{
		APIKey:           "",
		OriginalLanguage: "",
		Language:         "zh",
		OverviewLength:   10,
		FolderLocation:   "",
	}
}

// Keys lists the settings keys in display order.
var Keys = []string{"api_key", "original_language", "language", "overview_length", "folder_location"}

// Get returns the value of a settings key as text.
func (s Settings) Get(key string) (string, error) {
	switch key {
	case "api_key":
		return s.APIKey, nil
	case "original_language":
		return s.OriginalLanguage, nil
	case "language":
		return s.Language, nil
	case "overview_length":
		return strconv.Itoa(s.OverviewLength), nil
	case "folder_location":
		return s.FolderLocation, nil
	}
	return "", fmt.Errorf("unknown setting %q", key)
}

// Set assigns a settings key from text. Values are stored as given;
// only overview_length must parse as a non-negative integer.
func (s *Settings) Set(key, value string) error {
	switch key {
	case "api_key":
		s.APIKey = value
	case "original_language":
		s.OriginalLanguage = value
	case "language":
		s.Language = value
	case "overview_length":
		n, err := strconv.ParseUint(value, 10, 31)
		if err != nil {
			return fmt.Errorf("overview_length: %w", err)
		}
		s.OverviewLength = int(n)
	case "folder_location":
		s.FolderLocation = value
	default:
		return fmt.Errorf("unknown setting %q", key)
	}
	return nil
}

// Backend stores the encoded settings blob.
type Backend interface {
	// Load returns the persisted blob, or nil when nothing was saved yet.
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
	Close() error
}

// Store owns the process-wide settings.
type Store struct {
	mu      sync.RWMutex
	backend Backend
	current Settings
}

// NewStore creates a store holding the defaults until Load is called.
func NewStore(backend Backend) *Store {
	return &Store{
		backend: backend,
		current: Defaults(),
	}
}

// Load merges the persisted values over the defaults.
// Keys missing from the persisted blob keep their default value.
func (s *Store) Load(ctx context.Context) error {
	data, err := s.backend.Load(ctx)
	if err != nil {
		return fmt.Errorf("load settings: %w", err)
	}

	merged := Defaults()
	if len(data) > 0 {
		if _, err := toml.Decode(string(data), &merged); err != nil {
			return fmt.Errorf("parse settings: %w", err)
		}
	}

	s.mu.Lock()
	s.current = merged
	s.mu.Unlock()
	return nil
}

// Save writes the current values, replacing whatever was persisted.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	cur := s.current
	s.mu.RUnlock()

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cur); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	if err := s.backend.Save(ctx, buf.Bytes()); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Snapshot returns a copy of the current settings.
func (s *Store) Snapshot() Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Update applies fn to the settings and persists the result.
func (s *Store) Update(ctx context.Context, fn func(*Settings) error) error {
	s.mu.Lock()
	next := s.current
	if err := fn(&next); err != nil {
		s.mu.Unlock()
		return err
	}
	s.current = next
	s.mu.Unlock()

	return s.Save(ctx)
}

// Close releases the backend.
func (s *Store) Close() error {
	return s.backend.Close()
}
