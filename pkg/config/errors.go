package config

import "errors"

// Error definitions for config package.
var (
	// Configuration file errors.
	ErrConfigFileParse = errors.New("failed to parse config file")
	// Configuration validation errors.
	ErrUnknownPicker           = errors.New("unknown picker")
	ErrInvalidDefaultDirectory = errors.New("default_directory is not a valid path")
	// Configuration initialization errors.
	ErrConfigNotInitialized = errors.New("configuration not found. Run 'hgd init' to initialize")
)
