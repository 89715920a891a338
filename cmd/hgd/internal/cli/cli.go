// Package cli provides common configuration and wiring for the hgd CLI.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/lerenn/hypergraph-desktop/pkg/config"
	"github.com/lerenn/hypergraph-desktop/pkg/dependencies"
	"github.com/lerenn/hypergraph-desktop/pkg/dialog"
	"github.com/lerenn/hypergraph-desktop/pkg/fs"
	"github.com/lerenn/hypergraph-desktop/pkg/logger"
	"github.com/lerenn/hypergraph-desktop/pkg/menu"
	"github.com/lerenn/hypergraph-desktop/pkg/prompt"
)

var (
	// Quiet suppresses all output except errors and probe results.
	Quiet bool
	// Verbose enables diagnostic output on stderr.
	Verbose bool
	// ConfigPath specifies a custom config file path.
	ConfigPath string
)

// GetConfigPath returns the config file path in use.
func GetConfigPath() string {
	if ConfigPath != "" {
		return ConfigPath
	}
	return config.DefaultConfigPath()
}

// NewLogger returns the stderr logger in verbose mode and a noop logger otherwise.
func NewLogger() logger.Logger {
	if Verbose {
		return logger.NewDefaultLogger()
	}
	return logger.NewNoopLogger()
}

// NewConfigManager creates a config manager over the config path in use.
func NewConfigManager(f fs.FS) config.Manager {
	return config.NewManager(GetConfigPath(), f)
}

// LoadConfig loads the configuration, falling back to defaults when no file exists.
func LoadConfig(manager config.Manager) (config.Config, error) {
	cfg, err := manager.GetConfigWithFallback()
	if err != nil {
		return config.Config{}, fmt.Errorf("%w: %w", ErrFailedToLoadConfig, err)
	}
	return cfg, nil
}

// NewDependencies wires the application for the current flags and configuration.
func NewDependencies() (*dependencies.Dependencies, config.Config, error) {
	log := NewLogger()
	f := fs.NewFSWithLogger(log)
	manager := NewConfigManager(f)

	cfg, err := LoadConfig(manager)
	if err != nil {
		return nil, config.Config{}, err
	}

	deps := dependencies.New().
		WithLogger(log).
		WithFS(f).
		WithConfig(manager).
		WithDispatcher(menu.NewDispatcher(log))
	deps.WithPicker(NewPicker(cfg, f, deps.Prompt))

	if err := deps.Validate(); err != nil {
		return nil, config.Config{}, err
	}
	return deps, cfg, nil
}

// NewPicker returns the picker named by the configuration.
func NewPicker(cfg config.Config, f fs.FS, p prompt.Prompter) dialog.Picker {
	if cfg.Picker == config.PickerPrompt {
		return dialog.NewPromptPicker(p, f)
	}
	return dialog.NewTUIPicker(f)
}

// Window builds the picker window from the configuration. A non-empty start overrides the default directory.
func Window(cfg config.Config, start string) dialog.Window {
	win := dialog.Window{
		Title:    cfg.WindowTitle,
		StartDir: cfg.DefaultDirectory,
	}
	if start != "" {
		win.StartDir = start
	}
	return win
}

// Printf writes informational output unless Quiet is set.
func Printf(out io.Writer, format string, args ...interface{}) {
	if Quiet {
		return
	}
	_, _ = fmt.Fprintf(out, format, args...)
}

// ReadContent returns args[0], or stdin when it is "-" or absent.
func ReadContent(in io.Reader, args []string) (string, error) {
	if len(args) > 0 && args[0] != "-" {
		return args[0], nil
	}
	if in == nil {
		in = os.Stdin
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrFailedToReadInput, err)
	}
	return string(data), nil
}
