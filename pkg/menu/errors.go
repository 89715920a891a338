// Package menu provides the application menu template and the dispatcher of its actions.
package menu

import "errors"

// Error definitions for menu package.
var (
	// Template errors.
	ErrTemplateParse   = errors.New("failed to parse menu template")
	ErrInvalidItem     = errors.New("menu item needs a label or a role")
	ErrDuplicateAction = errors.New("duplicate menu action")

	// Dispatch errors.
	ErrEmptyAction     = errors.New("action cannot be empty")
	ErrNilHandler      = errors.New("handler cannot be nil")
	ErrNoHandler       = errors.New("no handler registered for action")
	ErrHandlerFailed   = errors.New("menu action handler failed")
	ErrActionNotInMenu = errors.New("action is not part of the menu")
)
