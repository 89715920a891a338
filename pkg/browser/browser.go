package browser

import (
	"context"
	"errors"
	"fmt"

	"github.com/lerenn/hypergraph-desktop/pkg/dialog"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/lerenn/hypergraph-desktop/pkg/logger"
)

// pickOptions lets the user select an existing directory or create one inline.
var pickOptions = dialog.Options{
	OpenDirectory:   true,
	CreateDirectory: true,
}

// Browser interface mediates the user-driven selection of a directory.
type Browser interface {
	// BrowseDirectory lets the user pick a directory and reports how it ended.
	BrowseDirectory(ctx context.Context, win dialog.Window) (Result, error)

	// BrowseDirectoryPath is BrowseDirectory with cancelled and invalid outcomes
	// collapsed into ("", false).
	BrowseDirectoryPath(ctx context.Context, win dialog.Window) (string, bool)
}

type realBrowser struct {
	fs     fs.FS
	picker dialog.Picker
	logger logger.Logger
}

// NewBrowserParams contains parameters for creating a new Browser.
type NewBrowserParams struct {
	FS     fs.FS
	Picker dialog.Picker
	Logger logger.Logger
}

// NewBrowser creates a new Browser instance.
func NewBrowser(params NewBrowserParams) Browser {
	return &realBrowser{
		fs:     params.FS,
		picker: params.Picker,
		logger: logger.OrNoop(params.Logger),
	}
}

// BrowseDirectory lets the user pick a directory and reports how it ended.
// Only the first selected path is considered.
func (b *realBrowser) BrowseDirectory(ctx context.Context, win dialog.Window) (Result, error) {
	paths, err := b.picker.PickDirectory(ctx, win, pickOptions)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrPickerFailed, err)
	}

	if len(paths) == 0 || paths[0] == "" {
		b.logger.Logf("Directory selection cancelled")
		return Result{Status: StatusCancelled}, nil
	}

	selected := paths[0]
	resolved := b.fs.NormalizeAndResolvePath(selected)
	if resolved == "" || !b.fs.IsDirectory(resolved) {
		b.logger.Logf("Selected path %q is not a directory", selected)
		return Result{Status: StatusInvalid, Selected: selected}, nil
	}

	return Result{Status: StatusResolved, Selected: selected, Path: resolved}, nil
}

// BrowseDirectoryPath is BrowseDirectory with every negative outcome collapsed into ("", false).
// Picker errors are logged.
func (b *realBrowser) BrowseDirectoryPath(ctx context.Context, win dialog.Window) (string, bool) {
	result, err := b.BrowseDirectory(ctx, win)
	if err != nil {
		b.logger.Logf("Cannot browse directory: %v", err)
		return "", false
	}
	return result.Path, result.Ok()
}
