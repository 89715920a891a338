package fs

import (
	"errors"
	iofs "io/fs"
)

// probe runs a stat-like call and reports whether it succeeded and matched.
// Failures other than a missing entry are logged; none of them reach the caller.
func (f *realFS) probe(op, path string, stat func(string) (iofs.FileInfo, error), match func(iofs.FileInfo) bool) bool {
	info, err := stat(path)
	if err != nil {
		if !errors.Is(err, iofs.ErrNotExist) {
			f.logger.Logf("%s %q: %v", op, path, err)
		}
		return false
	}
	return match(info)
}
