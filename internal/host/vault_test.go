package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVault_WriteBinary_LiteralPrefix(t *testing.T) {
	root := t.TempDir()
	v := NewVault(root)

	// "covers/" + "/abc.jpg"
	err := v.WriteBinary(context.Background(), "covers//abc.jpg", []byte("img"))
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(root, "covers", "abc.jpg"))
	require.NoError(t, err)
	assert.Equal(t, []byte("img"), data)
}

func TestVault_WriteBinary_EmptyPrefix(t *testing.T) {
	root := t.TempDir()
	v := NewVault(root)

	require.NoError(t, v.WriteBinary(context.Background(), "/abc.jpg", []byte("img")))
	_, err := os.Stat(filepath.Join(root, "abc.jpg"))
	assert.NoError(t, err)
}

func TestVault_WriteBinary_Exists(t *testing.T) {
	root := t.TempDir()
	v := NewVault(root)
	ctx := context.Background()

	require.NoError(t, v.WriteBinary(ctx, "abc.jpg", []byte("first")))
	err := v.WriteBinary(ctx, "abc.jpg", []byte("second"))
	assert.ErrorIs(t, err, ErrExists)

	data, _ := os.ReadFile(filepath.Join(root, "abc.jpg"))
	assert.Equal(t, []byte("first"), data, "existing file is left untouched")
}

func TestVault_Resolve_RejectsEscape(t *testing.T) {
	v := NewVault(t.TempDir())

	for _, p := range []string{"../abc.jpg", "covers/../../abc.jpg", "", "/"} {
		_, err := v.Resolve(p)
		assert.ErrorIs(t, err, ErrOutsideVault, p)
	}
}
