package fs

import (
	"path/filepath"
	"strings"
	"unicode"
)

// maxPathLength is the longest pathname accepted, matching PATH_MAX on Linux.
const maxPathLength = 4096

// IsValidPathname checks if the path is syntactically usable as a pathname.
// Nothing is looked up on disk.
func IsValidPathname(path string) bool {
	if strings.TrimSpace(path) == "" || len(path) > maxPathLength {
		return false
	}

	for _, r := range path {
		if r == 0 || unicode.IsControl(r) {
			return false
		}
	}

	// The volume name ("C:", "\\host\share") is allowed to carry characters
	// that are reserved in the rest of the path.
	rest := path[len(filepath.VolumeName(path)):]
	return !strings.ContainsAny(rest, reservedPathChars)
}

// IsValidPathname checks if the path is syntactically usable as a pathname.
func (f *realFS) IsValidPathname(path string) bool {
	return IsValidPathname(path)
}
