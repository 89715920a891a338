package dialog

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/lerenn/hypergraph-desktop/pkg/prompt"
)

type promptPicker struct {
	prompt prompt.Prompter
	fs     fs.FS
}

// NewPromptPicker creates a Picker asking for a path on a single input line.
func NewPromptPicker(p prompt.Prompter, f fs.FS) Picker {
	return &promptPicker{
		prompt: p,
		fs:     f,
	}
}

// PickDirectory asks the user to type a directory path.
// A path that does not exist yet is created after confirmation when opts allow it.
func (p *promptPicker) PickDirectory(ctx context.Context, win Window, opts Options) ([]string, error) {
	if !opts.OpenDirectory {
		return nil, ErrDirectoryOnly
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	answer, err := p.prompt.PromptForDirectory(win.Title, win.StartDir)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
	}
	if answer == "" {
		return nil, nil
	}

	expanded, err := p.fs.ExpandPath(answer)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
	}

	path, err := filepath.Abs(expanded)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
	}

	if opts.CreateDirectory && !p.fs.Exists(ctx, path) && !p.fs.IsSymbolicLink(path) {
		create, err := p.prompt.PromptForConfirmation(fmt.Sprintf("%s does not exist. Create it?", path), true)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
		}
		if !create {
			return nil, nil
		}
		if err := p.fs.CreateDirectory(path); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
		}
	}

	return []string{path}, nil
}
