package cli

import "errors"

// Error definitions for the cli package.
var (
	ErrFailedToLoadConfig = errors.New("failed to load configuration")
	ErrFailedToReadInput  = errors.New("failed to read input")
)
