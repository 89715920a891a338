//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_WriteFile(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "hypergraph.yaml")

	// Test writing a new file
	require.NoError(t, fs.WriteFile(path, "name: graph\nlabel: \u00e9t\u00e9\n"))
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "name: graph\nlabel: \u00e9t\u00e9\n", string(data))

	// Test overwriting with shorter content
	require.NoError(t, fs.WriteFile(path, "x"))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))

	// Test writing into a missing directory
	err = fs.WriteFile(filepath.Join(tmpDir, "missing", "file.yaml"), "x")
	assert.ErrorIs(t, err, ErrWriteFile)
	assert.ErrorIs(t, err, os.ErrNotExist)

	// Test writing invalid UTF-8
	err = fs.WriteFile(path, string([]byte{0xff, 0xfe}))
	assert.ErrorIs(t, err, ErrInvalidUTF8)
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestFS_WriteFile_Directory(t *testing.T) {
	fs := NewFS()

	err := fs.WriteFile(t.TempDir(), "x")
	assert.ErrorIs(t, err, ErrWriteFile)
}
