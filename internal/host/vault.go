package host

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	// ErrExists is returned when the target file already exists.
	ErrExists = errors.New("file already exists")

	// ErrOutsideVault is returned for paths that resolve outside the vault root.
	ErrOutsideVault = errors.New("path outside vault")
)

// Vault is Storage rooted at a directory. Paths are vault-relative and
// use forward slashes; repeated separators collapse.
type Vault struct {
	root string
}

// NewVault creates a vault rooted at dir.
func NewVault(dir string) *Vault {
	return &Vault{root: filepath.Clean(dir)}
}

// Root returns the vault directory.
func (v *Vault) Root() string { return v.root }

// Resolve maps a vault path to a filesystem path.
func (v *Vault) Resolve(p string) (string, error) {
	full := filepath.Join(v.root, filepath.FromSlash(p))
	rel, err := filepath.Rel(v.root, full)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, p)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: %s", ErrOutsideVault, p)
	}
	if rel == "." {
		return "", fmt.Errorf("%w: %s is the vault root", ErrOutsideVault, p)
	}
	return full, nil
}

// WriteBinary creates a new file at path. It fails with ErrExists when the
// file is already there; parent folders are created.
func (v *Vault) WriteBinary(_ context.Context, p string, data []byte) error {
	full, err := v.Resolve(p)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0755); err != nil {
		return fmt.Errorf("create folder: %w", err)
	}

	f, err := os.OpenFile(full, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %s", ErrExists, p)
	}
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		_ = os.Remove(full)
		return fmt.Errorf("write file: %w", err)
	}
	return f.Close()
}
