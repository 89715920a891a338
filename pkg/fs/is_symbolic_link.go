package fs

import (
	iofs "io/fs"
	"os"
)

// IsSymbolicLink checks if the path itself is a symbolic link, without following it.
// A dangling link is still a symbolic link.
func (f *realFS) IsSymbolicLink(path string) bool {
	if path == "" {
		return false
	}
	return f.probe("lstat", path, os.Lstat, func(info iofs.FileInfo) bool {
		return info.Mode()&iofs.ModeSymlink != 0
	})
}
