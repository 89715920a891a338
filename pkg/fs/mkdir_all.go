package fs

import (
	"fmt"
	"os"
)

// MkdirAll creates a directory and all missing parents with mode 0755.
// It succeeds when the directory already exists.
func (f *realFS) MkdirAll(path string) error {
	if path == "" {
		return ErrPathEmpty
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrMkdirAll, err)
	}

	return nil
}
