package fs

import (
	"context"

	"github.com/lerenn/hypergraph-desktop/pkg/logger"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=interface.go -destination=mocks/fs.gen.go -package=mocks

// FS interface provides the path inspection and resolution operations used to pick
// and validate directories.
type FS interface {
	// Exists checks if a file or directory is accessible at the given path.
	Exists(ctx context.Context, path string) bool

	// IsSymbolicLink checks if the path itself is a symbolic link, without following it.
	IsSymbolicLink(path string) bool

	// IsFile checks if the path names a regular file once symbolic links are followed.
	IsFile(path string) bool

	// IsDirectory checks if the path names a directory once symbolic links are followed.
	IsDirectory(path string) bool

	// Inspect classifies the entry at the given path.
	Inspect(path string) Entry

	// NormalizeAndResolvePath returns the absolute path, with one symbolic link hop resolved.
	// An empty string means the link target could not be resolved.
	NormalizeAndResolvePath(path string) string

	// WriteFile writes UTF-8 text to a file, replacing any existing content.
	WriteFile(path, content string) error

	// ReadFile reads a UTF-8 text file.
	ReadFile(path string) (string, error)

	// CreateDirectory creates exactly one new directory level.
	CreateDirectory(path string) error

	// MkdirAll creates a directory and all missing parents.
	MkdirAll(path string) error

	// HasYamlExtension checks if the name ends with .yml or .yaml.
	HasYamlExtension(name string) bool

	// IsValidPathname checks if the path is syntactically usable as a pathname.
	IsValidPathname(path string) bool

	// GetHomeDir returns the user's home directory path.
	GetHomeDir() (string, error)

	// ExpandPath expands ~ to user's home directory.
	ExpandPath(path string) (string, error)
}

type realFS struct {
	logger logger.Logger
}

// NewFS creates a new FS instance that discards diagnostics.
func NewFS() FS {
	return &realFS{logger: logger.NewNoopLogger()}
}

// NewFSWithLogger creates a new FS instance reporting diagnostics to the given logger.
func NewFSWithLogger(l logger.Logger) FS {
	return &realFS{logger: logger.OrNoop(l)}
}
