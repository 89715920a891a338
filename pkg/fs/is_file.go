package fs

import (
	iofs "io/fs"
	"os"
)

// IsFile checks if the path names a regular file once symbolic links are followed.
func (f *realFS) IsFile(path string) bool {
	if path == "" {
		return false
	}
	return f.probe("stat", path, os.Stat, func(info iofs.FileInfo) bool {
		return info.Mode().IsRegular()
	})
}
