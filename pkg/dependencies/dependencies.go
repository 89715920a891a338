// Package dependencies provides a centralized dependency container for the hypergraph desktop layer.
// Related dependencies are grouped together and configured through a fluent API.
package dependencies

import (
	"errors"

	"github.com/lerenn/hypergraph-desktop/pkg/browser"
	"github.com/lerenn/hypergraph-desktop/pkg/config"
	"github.com/lerenn/hypergraph-desktop/pkg/dialog"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/lerenn/hypergraph-desktop/pkg/logger"
	"github.com/lerenn/hypergraph-desktop/pkg/menu"
	"github.com/lerenn/hypergraph-desktop/pkg/prompt"
)

// Validation errors for missing dependencies.
var (
	ErrFSMissing         = errors.New("fs dependency is required but not set")
	ErrLoggerMissing     = errors.New("logger dependency is required but not set")
	ErrConfigMissing     = errors.New("config dependency is required but not set")
	ErrPromptMissing     = errors.New("prompt dependency is required but not set")
	ErrPickerMissing     = errors.New("picker dependency is required but not set")
	ErrDispatcherMissing = errors.New("dispatcher dependency is required but not set")
)

// Dependencies holds shared dependencies across the application.
type Dependencies struct {
	FS         fs.FS
	Logger     logger.Logger
	Config     config.Manager
	Prompt     prompt.Prompter
	Picker     dialog.Picker
	Dispatcher menu.Dispatcher
}

// New creates a new Dependencies instance with sensible defaults.
func New() *Dependencies {
	log := logger.NewNoopLogger()
	f := fs.NewFSWithLogger(log)
	p := prompt.NewPrompt()

	return &Dependencies{
		FS:         f,
		Logger:     log,
		Prompt:     p,
		Picker:     dialog.NewTUIPicker(f),
		Dispatcher: menu.NewDispatcher(log),
		// Note: Config is intentionally left nil
		// as it requires a config path and is set via WithConfig
	}
}

// WithFS sets the filesystem and returns the instance for chaining.
func (d *Dependencies) WithFS(f fs.FS) *Dependencies {
	d.FS = f
	return d
}

// WithLogger sets the logger and returns the instance for chaining.
func (d *Dependencies) WithLogger(l logger.Logger) *Dependencies {
	d.Logger = l
	return d
}

// WithConfig sets the config manager and returns the instance for chaining.
func (d *Dependencies) WithConfig(cfg config.Manager) *Dependencies {
	d.Config = cfg
	return d
}

// WithPrompt sets the prompt and returns the instance for chaining.
func (d *Dependencies) WithPrompt(p prompt.Prompter) *Dependencies {
	d.Prompt = p
	return d
}

// WithPicker sets the directory picker and returns the instance for chaining.
func (d *Dependencies) WithPicker(p dialog.Picker) *Dependencies {
	d.Picker = p
	return d
}

// WithDispatcher sets the menu dispatcher and returns the instance for chaining.
func (d *Dependencies) WithDispatcher(disp menu.Dispatcher) *Dependencies {
	d.Dispatcher = disp
	return d
}

// Browser builds the directory selection workflow from the container.
func (d *Dependencies) Browser() browser.Browser {
	return browser.NewBrowser(browser.NewBrowserParams{
		FS:     d.FS,
		Picker: d.Picker,
		Logger: d.Logger,
	})
}

// dependencyCheck pairs a dependency with the error reported when it is missing.
type dependencyCheck struct {
	dep any
	err error
}

// Validate ensures all required dependencies are set.
func (d *Dependencies) Validate() error {
	checks := []dependencyCheck{
		{d.FS, ErrFSMissing},
		{d.Logger, ErrLoggerMissing},
		{d.Config, ErrConfigMissing},
		{d.Prompt, ErrPromptMissing},
		{d.Picker, ErrPickerMissing},
		{d.Dispatcher, ErrDispatcherMissing},
	}

	for _, check := range checks {
		if check.dep == nil {
			return check.err
		}
	}
	return nil
}
