package fs

import (
	"fmt"
	"os"
	"unicode/utf8"
)

// WriteFile writes UTF-8 text to a file, replacing any existing content.
func (f *realFS) WriteFile(path, content string) error {
	if !utf8.ValidString(content) {
		return fmt.Errorf("%w: %w: %s", ErrWriteFile, ErrInvalidUTF8, path)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("%w: %w", ErrWriteFile, err)
	}

	return nil
}
