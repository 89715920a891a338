//go:build !windows

package fs

import (
	"context"

	"golang.org/x/sys/unix"
)

// fOK is the access(2) mode that only tests for existence.
const fOK = 0

// Exists checks if a file or directory is accessible at the given path.
// It is an access(2) existence check, not a full stat, and never fails.
func (f *realFS) Exists(ctx context.Context, path string) bool {
	if path == "" || ctx.Err() != nil {
		return false
	}
	return unix.Access(path, fOK) == nil
}
