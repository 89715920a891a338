//go:build integration

package fs

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/lerenn/hypergraph-desktop/pkg/logger"
	"github.com/stretchr/testify/require"
)

// fixture is a temporary tree holding a file, a directory and links to both.
type fixture struct {
	root       string
	file       string
	dir        string
	fileLink   string
	dirLink    string
	brokenLink string
	chainLink  string
}

// newFixture builds the fixture tree and skips when symbolic links are unavailable.
func newFixture(t *testing.T) fixture {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("symbolic links need elevated privileges on Windows")
	}

	root := t.TempDir()
	f := fixture{
		root:       root,
		file:       filepath.Join(root, "hypergraph.yaml"),
		dir:        filepath.Join(root, "graphs"),
		fileLink:   filepath.Join(root, "file-link"),
		dirLink:    filepath.Join(root, "dir-link"),
		brokenLink: filepath.Join(root, "broken-link"),
		chainLink:  filepath.Join(root, "chain-link"),
	}

	require.NoError(t, os.WriteFile(f.file, []byte("nodes: []\n"), 0644))
	require.NoError(t, os.Mkdir(f.dir, 0755))
	require.NoError(t, os.Symlink(f.file, f.fileLink))
	require.NoError(t, os.Symlink("graphs", f.dirLink))
	require.NoError(t, os.Symlink(filepath.Join(root, "missing"), f.brokenLink))
	require.NoError(t, os.Symlink("dir-link", f.chainLink))

	return f
}

// newBufferedFS returns an FS logging into the returned buffer.
func newBufferedFS() (FS, *bytes.Buffer) {
	var buf bytes.Buffer
	return NewFSWithLogger(logger.NewWriterLogger(&buf)), &buf
}

func mustSymlink(t *testing.T, target, link string) {
	t.Helper()
	require.NoError(t, os.Symlink(target, link))
}
