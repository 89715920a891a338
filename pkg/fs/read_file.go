package fs

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// ReadFile reads a UTF-8 text file.
// A missing file still matches os.ErrNotExist through the returned error.
func (f *realFS) ReadFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadFile, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("%w: %w: %s", ErrReadFile, ErrInvalidUTF8, path)
	}

	return string(data), nil
}
