// Package fs provides path inspection, resolution and small I/O helpers.
package fs

import "errors"

// Error definitions for fs package.
var (
	// Directory creation errors.
	ErrPathEmpty       = errors.New("directory: path is null")
	ErrAlreadyExists   = errors.New("already exists")
	ErrCreateDirectory = errors.New("failed to create directory")

	ErrMkdirAll        = errors.New("failed to create directory tree")

	// Text file errors.
	ErrReadFile    = errors.New("failed to read file")
	ErrWriteFile   = errors.New("failed to write file")
	ErrInvalidUTF8 = errors.New("content is not valid UTF-8")
)
