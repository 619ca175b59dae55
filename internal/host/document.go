package host

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"unicode/utf8"
)

// ErrOutOfRange is returned for insert positions past the end of the document.
var ErrOutOfRange = errors.New("position out of range")

// MarkdownFile is a Document stored as a file on disk.
type MarkdownFile struct {
	mu   sync.Mutex
	path string
}

// NewMarkdownFile opens the document at path. The file is read on each edit.
func NewMarkdownFile(path string) *MarkdownFile {
	return &MarkdownFile{path: path}
}

// Path returns the file path.
func (d *MarkdownFile) Path() string { return d.path }

// InsertAt inserts text at pos and rewrites the file.
func (d *MarkdownFile) InsertAt(pos Position, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	info, err := os.Stat(d.path)
	if err != nil {
		return fmt.Errorf("stat document: %w", err)
	}
	content, err := os.ReadFile(d.path)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	off, err := offsetOf(string(content), pos)
	if err != nil {
		return err
	}

	var b strings.Builder
	b.Grow(len(content) + len(text))
	b.Write(content[:off])
	b.WriteString(text)
	b.Write(content[off:])

	return writeReplace(d.path, []byte(b.String()), info.Mode().Perm())
}

// offsetOf converts a line/character position to a byte offset.
func offsetOf(content string, pos Position) (int, error) {
	if pos.Line < 0 || pos.Ch < 0 {
		return 0, fmt.Errorf("%w: %d:%d", ErrOutOfRange, pos.Line, pos.Ch)
	}

	off := 0
	for i := 0; i < pos.Line; i++ {
		idx := strings.IndexByte(content[off:], '\n')
		if idx < 0 {
			return 0, fmt.Errorf("%w: line %d", ErrOutOfRange, pos.Line)
		}
		off += idx + 1
	}

	for i := 0; i < pos.Ch; i++ {
		if off >= len(content) || content[off] == '\n' {
			return 0, fmt.Errorf("%w: %d:%d", ErrOutOfRange, pos.Line, pos.Ch)
		}
		_, size := utf8.DecodeRuneInString(content[off:])
		off += size
	}
	return off, nil
}

// writeReplace writes data next to path and renames it into place.
func writeReplace(path string, data []byte, perm os.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err := tmp.Chmod(perm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replace document: %w", err)
	}
	return nil
}

// FileWorkspace has at most one active document, a file path.
type FileWorkspace struct {
	mu     sync.RWMutex
	active string
}

// NewFileWorkspace creates a workspace; an empty path means no active document.
func NewFileWorkspace(path string) *FileWorkspace {
	return &FileWorkspace{active: path}
}

// SetActive changes the active document. An empty path closes it.
func (w *FileWorkspace) SetActive(path string) {
	w.mu.Lock()
	w.active = path
	w.mu.Unlock()
}

// ActiveDocument returns the active document if one is set and exists.
func (w *FileWorkspace) ActiveDocument() (Document, bool) {
	w.mu.RLock()
	path := w.active
	w.mu.RUnlock()

	if path == "" {
		return nil, false
	}
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		return nil, false
	}
	return NewMarkdownFile(path), true
}
