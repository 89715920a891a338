package fs

import (
	"os"
	"path/filepath"
)

// NormalizeAndResolvePath returns the absolute, cleaned form of path.
//
// A path that is not a symbolic link is returned in absolute form whether it exists or not.
// For a symbolic link, only the first hop is read here: its target is resolved against the
// directory holding the link and then handed to IsFile/IsDirectory, which follow any further
// hops through the OS stat call (and its loop detection). When that target is neither a file
// nor a directory the empty string is returned.
func (f *realFS) NormalizeAndResolvePath(path string) string {
	if !f.IsSymbolicLink(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			f.logger.Logf("Cannot normalize path %q: %v", path, err)
			return ""
		}
		return absPath
	}

	target, err := os.Readlink(path)
	if err != nil {
		f.logger.Logf("Cannot read link %q: %v", path, err)
		return ""
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	targetPath, err := filepath.Abs(target)
	if err != nil {
		f.logger.Logf("Cannot resolve link target %q (%s): %v", path, target, err)
		return ""
	}

	if f.IsFile(targetPath) || f.IsDirectory(targetPath) {
		return targetPath
	}

	f.logger.Logf("Cannot resolve link target %q (%s).", path, targetPath)
	return ""
}
