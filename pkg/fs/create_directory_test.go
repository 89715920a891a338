//go:build integration

package fs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_CreateDirectory(t *testing.T) {
	fs := NewFS()
	tmpDir := t.TempDir()

	// Test creating a single directory
	testDir := filepath.Join(tmpDir, "test-dir")
	err := fs.CreateDirectory(testDir)
	assert.NoError(t, err)
	assert.True(t, fs.IsDirectory(testDir))

	info, err := os.Stat(testDir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	// Test creating existing directory
	err = fs.CreateDirectory(testDir)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Contains(t, err.Error(), testDir)

	// Test creating over an existing file
	file := filepath.Join(tmpDir, "file.txt")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.ErrorIs(t, fs.CreateDirectory(file), ErrAlreadyExists)

	// Test creating nested directories (parents are not created)
	nestedDir := filepath.Join(tmpDir, "level1", "level2")
	err = fs.CreateDirectory(nestedDir)
	assert.ErrorIs(t, err, ErrCreateDirectory)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.False(t, fs.IsDirectory(filepath.Join(tmpDir, "level1")))

	// Test empty path
	assert.ErrorIs(t, fs.CreateDirectory(""), ErrPathEmpty)
}

func TestFS_CreateDirectory_DanglingLink(t *testing.T) {
	f := newFixture(t)
	fs := NewFS()

	assert.ErrorIs(t, fs.CreateDirectory(f.brokenLink), ErrAlreadyExists)
}
