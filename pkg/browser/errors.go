// Package browser provides the interactive directory selection workflow.
package browser

import "errors"

// Error definitions for browser package.
var (
	ErrPickerFailed = errors.New("failed to browse directory")
)
