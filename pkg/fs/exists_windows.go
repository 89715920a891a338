//go:build windows

package fs

import (
	"context"
	"os"
)

// Exists checks if a file or directory is accessible at the given path.
// Windows has no access(2) equivalent, so a stat stands in for it.
func (f *realFS) Exists(ctx context.Context, path string) bool {
	if path == "" || ctx.Err() != nil {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}
