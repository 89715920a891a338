package fs

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ExpandPath expands a leading ~ or ~/ to user's home directory.
// Other forms such as ~user are returned unchanged.
func (f *realFS) ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}

	homeDir, err := f.GetHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to determine home directory: %w", err)
	}

	return filepath.Join(homeDir, path[1:]), nil
}
