// Package config provides configuration management functionality for the hypergraph desktop layer.
package config

import (
	"fmt"

	"github.com/lerenn/hypergraph-desktop/pkg/fs"
)

// Picker names.
const (
	// PickerTUI is the full-screen directory browser.
	PickerTUI = "tui"
	// PickerPrompt is the single input line picker.
	PickerPrompt = "prompt"
)

// Config represents the application configuration.
type Config struct {
	// DefaultDirectory is where the picker starts browsing. Empty means the current directory.
	DefaultDirectory string `yaml:"default_directory"`
	// Picker selects the directory picker implementation.
	Picker string `yaml:"picker"`
	// WindowTitle is the heading shown by the picker.
	WindowTitle string `yaml:"window_title"`
}

// Validate validates the configuration values.
func (c Config) Validate() error {
	switch c.Picker {
	case PickerTUI, PickerPrompt:
	default:
		return fmt.Errorf("%w: %q (expected %q or %q)", ErrUnknownPicker, c.Picker, PickerTUI, PickerPrompt)
	}

	if c.DefaultDirectory != "" && !fs.IsValidPathname(c.DefaultDirectory) {
		return fmt.Errorf("%w: %q", ErrInvalidDefaultDirectory, c.DefaultDirectory)
	}

	return nil
}

// expandTildes expands ~ in path fields.
func (c *Config) expandTildes(f fs.FS) error {
	expanded, err := f.ExpandPath(c.DefaultDirectory)
	if err != nil {
		return fmt.Errorf("failed to expand default_directory: %w", err)
	}
	c.DefaultDirectory = expanded
	return nil
}
