package menu

import (
	"context"
	"fmt"
)

// Menu binds a template to the dispatcher handling its actions.
type Menu struct {
	Template   Template
	Dispatcher Dispatcher
}

// New creates a Menu over the given template and dispatcher.
func New(t Template, d Dispatcher) *Menu {
	return &Menu{
		Template:   t,
		Dispatcher: d,
	}
}

// Trigger activates a menu entry by its action, as a click on it would.
func (m *Menu) Trigger(ctx context.Context, action string) error {
	if !m.Template.HasAction(action) {
		return fmt.Errorf("%w: %s", ErrActionNotInMenu, action)
	}
	return m.Dispatcher.Dispatch(ctx, action)
}
