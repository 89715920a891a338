// Package dialog provides the "choose a directory" pickers used by the browse workflow.
package dialog

import (
	"context"
	"errors"
)

//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=dialog.go -destination=mocks/dialog.gen.go -package=mocks

// Error definitions for dialog package.
var (
	ErrPickerFailed        = errors.New("directory picker failed")
	ErrDirectoryOnly       = errors.New("picker only supports selecting directories")
	ErrUnexpectedModelType = errors.New("unexpected model type")
)

// Window is the window context a picker is scoped to.
type Window struct {
	// Title is shown as the picker heading.
	Title string
	// StartDir is where browsing starts. Empty means the current directory.
	StartDir string
}

// Options enumerates what the user may do in the picker.
type Options struct {
	// OpenDirectory allows selecting an existing directory.
	OpenDirectory bool
	// CreateDirectory allows creating a new directory inline.
	CreateDirectory bool
}

// Picker interface presents a directory picker to the user.
type Picker interface {
	// PickDirectory returns zero or one selected absolute paths.
	// Zero paths means the user dismissed the picker.
	PickDirectory(ctx context.Context, win Window, opts Options) ([]string, error)
}
