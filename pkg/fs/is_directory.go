package fs

import (
	iofs "io/fs"
	"os"
)

// IsDirectory checks if the path names a directory once symbolic links are followed.
func (f *realFS) IsDirectory(path string) bool {
	if path == "" {
		return false
	}
	return f.probe("stat", path, os.Stat, func(info iofs.FileInfo) bool {
		return info.IsDir()
	})
}
