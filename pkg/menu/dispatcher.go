package menu

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/lerenn/hypergraph-desktop/pkg/logger"
)

// Event is one activation of a menu action.
type Event struct {
	ID     uuid.UUID
	Action string
	At     time.Time
}

// Handler reacts to a menu action.
type Handler func(ctx context.Context, event Event) error

// Dispatcher routes menu actions to the handlers registered for them.
// It replaces a process-wide event emitter with explicit registration.
type Dispatcher interface {
	// Register adds a handler for the action and returns a function removing it.
	Register(action string, handler Handler) (unregister func(), err error)

	// Dispatch calls every handler registered for the action, in registration order.
	Dispatch(ctx context.Context, action string) error
}

type registration struct {
	id      uint64
	handler Handler
}

type realDispatcher struct {
	mu       sync.RWMutex
	handlers map[string][]registration
	nextID   uint64
	logger   logger.Logger
	now      func() time.Time
}

// NewDispatcher creates a new Dispatcher instance.
func NewDispatcher(l logger.Logger) Dispatcher {
	return &realDispatcher{
		handlers: make(map[string][]registration),
		logger:   logger.OrNoop(l),
		now:      time.Now,
	}
}

// Register adds a handler for the action and returns a function removing it.
func (d *realDispatcher) Register(action string, handler Handler) (func(), error) {
	if action == "" {
		return nil, ErrEmptyAction
	}
	if handler == nil {
		return nil, ErrNilHandler
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.handlers[action] = append(d.handlers[action], registration{id: id, handler: handler})

	var once sync.Once
	return func() {
		once.Do(func() { d.unregister(action, id) })
	}, nil
}

func (d *realDispatcher) unregister(action string, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	regs := d.handlers[action]
	for i, reg := range regs {
		if reg.id == id {
			d.handlers[action] = append(regs[:i:i], regs[i+1:]...)
			break
		}
	}
	if len(d.handlers[action]) == 0 {
		delete(d.handlers, action)
	}
}

// Dispatch calls every handler registered for the action, in registration order.
// All handlers run even when one fails; their errors are joined.
func (d *realDispatcher) Dispatch(ctx context.Context, action string) error {
	if action == "" {
		return ErrEmptyAction
	}

	d.mu.RLock()
	regs := append([]registration(nil), d.handlers[action]...)
	d.mu.RUnlock()

	if len(regs) == 0 {
		return fmt.Errorf("%w: %s", ErrNoHandler, action)
	}

	event := Event{
		ID:     uuid.New(),
		Action: action,
		At:     d.now(),
	}
	d.logger.Logf("Dispatching menu action %s (%s)", action, event.ID)

	var errs []error
	for _, reg := range regs {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		if err := reg.handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s: %w", ErrHandlerFailed, action, errors.Join(errs...))
	}
	return nil
}
