package dialog

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
)

type tuiPicker struct {
	fs      fs.FS
	options []tea.ProgramOption
}

// NewTUIPicker creates a Picker running a full-screen Bubble Tea directory browser.
// Program options are appended to the defaults, which render on stderr.
func NewTUIPicker(f fs.FS, options ...tea.ProgramOption) Picker {
	return &tuiPicker{
		fs:      f,
		options: options,
	}
}

// PickDirectory runs the browser until the user selects a directory or quits.
func (p *tuiPicker) PickDirectory(ctx context.Context, win Window, opts Options) ([]string, error) {
	if !opts.OpenDirectory {
		return nil, ErrDirectoryOnly
	}

	model := newPickerModel(p.fs, win.Title, p.startDirectory(win.StartDir), opts.CreateDirectory)

	programOptions := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(os.Stderr),
	}, p.options...)
	program := tea.NewProgram(model, programOptions...)

	finalModel, err := program.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPickerFailed, err)
	}

	result, ok := finalModel.(pickerModel)
	if !ok {
		return nil, fmt.Errorf("%w: %w", ErrPickerFailed, ErrUnexpectedModelType)
	}

	if result.selected == "" {
		return nil, nil
	}
	return []string{result.selected}, nil
}

// startDirectory returns the absolute directory browsing starts from.
// It falls back to the current directory, then the home directory.
func (p *tuiPicker) startDirectory(dir string) string {
	if dir != "" {
		if expanded, err := p.fs.ExpandPath(dir); err == nil {
			if resolved := p.fs.NormalizeAndResolvePath(expanded); p.fs.IsDirectory(resolved) {
				return resolved
			}
		}
	}

	if cwd := p.fs.NormalizeAndResolvePath("."); p.fs.IsDirectory(cwd) {
		return cwd
	}

	if home, err := p.fs.GetHomeDir(); err == nil {
		return home
	}
	return string(os.PathSeparator)
}
