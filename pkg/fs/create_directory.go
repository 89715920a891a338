package fs

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
)

// CreateDirectory creates exactly one new directory level.
// It fails when path is empty, when anything (even a dangling link) is already there,
// or when the parent directory is missing.
func (f *realFS) CreateDirectory(path string) error {
	if path == "" {
		return ErrPathEmpty
	}

	if _, err := os.Lstat(path); err == nil {
		return fmt.Errorf("directory: %s %w", path, ErrAlreadyExists)
	} else if !errors.Is(err, iofs.ErrNotExist) {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	if err := os.Mkdir(path, 0755); err != nil {
		return fmt.Errorf("%w: %w", ErrCreateDirectory, err)
	}

	return nil
}
