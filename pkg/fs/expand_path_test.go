//go:build integration

package fs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFS_ExpandPath(t *testing.T) {
	fs := NewFS()

	// Get home directory for testing
	homeDir, err := fs.GetHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "tilde alone", path: "~", want: homeDir},
		{name: "tilde with path", path: "~/hypergraphs/demo", want: filepath.Join(homeDir, "hypergraphs", "demo")},
		{name: "tilde with trailing slash", path: "~/", want: homeDir},
		{name: "absolute path", path: "/some/regular/path", want: "/some/regular/path"},
		{name: "relative path", path: "relative/path", want: "relative/path"},
		{name: "empty path", path: "", want: ""},
		{name: "other user", path: "~bob/graphs", want: "~bob/graphs"},
		{name: "only leading tilde expanded", path: "~/test/~/path", want: filepath.Join(homeDir, "test", "~", "path")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expanded, err := fs.ExpandPath(tt.path)
			assert.NoError(t, err)
			assert.Equal(t, tt.want, expanded)
		})
	}
}
