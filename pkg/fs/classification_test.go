//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFS_Classification(t *testing.T) {
	f := newFixture(t)
	fs := NewFS()

	tests := []struct {
		name        string
		path        string
		wantSymlink bool
		wantFile    bool
		wantDir     bool
	}{
		{name: "regular file", path: f.file, wantFile: true},
		{name: "directory", path: f.dir, wantDir: true},
		{name: "link to file", path: f.fileLink, wantSymlink: true, wantFile: true},
		{name: "link to directory", path: f.dirLink, wantSymlink: true, wantDir: true},
		{name: "chain of links to directory", path: f.chainLink, wantSymlink: true, wantDir: true},
		{name: "broken link", path: f.brokenLink, wantSymlink: true},
		{name: "non-existent path", path: filepath.Join(f.root, "nope")},
		{name: "empty path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantSymlink, fs.IsSymbolicLink(tt.path))
			assert.Equal(t, tt.wantFile, fs.IsFile(tt.path))
			assert.Equal(t, tt.wantDir, fs.IsDirectory(tt.path))
		})
	}
}

func TestFS_Inspect(t *testing.T) {
	f := newFixture(t)
	fs := NewFS()

	assert.Equal(t, Entry{Path: f.file, Kind: EntryFile}, fs.Inspect(f.file))
	assert.Equal(t, Entry{Path: f.dirLink, Kind: EntryDirectory, Symlink: true}, fs.Inspect(f.dirLink))
	assert.Equal(t, Entry{Path: f.brokenLink, Kind: EntryNone, Symlink: true}, fs.Inspect(f.brokenLink))
	assert.Equal(t, "directory", fs.Inspect(f.dir).Kind.String())
}

func TestFS_Classification_SymlinkLoop(t *testing.T) {
	f := newFixture(t)
	fs, logs := newBufferedFS()

	a := filepath.Join(f.root, "loop-a")
	b := filepath.Join(f.root, "loop-b")
	mustSymlink(t, b, a)
	mustSymlink(t, a, b)

	assert.True(t, fs.IsSymbolicLink(a))
	assert.False(t, fs.IsFile(a))
	assert.False(t, fs.IsDirectory(a))
	assert.Equal(t, "", fs.NormalizeAndResolvePath(a))

	// The loop error is swallowed but still reported as a diagnostic
	assert.Contains(t, logs.String(), "loop-a")
}
