// Package engine runs the fixed-timestep host loop: it drains window events
// into key state, feeds elapsed clock time to the scheduler and dispatches the
// update, draw and diagnostic hooks.
package engine

import (
	"github.com/vovakirdan/keyloop/internal/core"
	"github.com/vovakirdan/keyloop/internal/shape"
)

// Context is the state shared by the loop and its hooks.
// It is owned by the loop goroutine and never touched concurrently.
type Context struct {
	Keys   core.KeyState
	Bind   *core.KeyBind
	Shapes *shape.Registry

	// Window size in cells, refreshed every iteration.
	Width  int
	Height int

	Ticks          uint64 // Update events dispatched so far
	Frames         uint64 // Draw passes completed so far
	LastDiagnostic string
}

// NewContext creates a context with an empty shape registry.
// A nil bind falls back to core.DefaultKeyBind.
func NewContext(bind *core.KeyBind) *Context {
	if bind == nil {
		bind = core.DefaultKeyBind()
	}
	return &Context{
		Bind:   bind,
		Shapes: shape.NewRegistry(),
	}
}

// Hooks are the optional callbacks dispatched by the loop.
// A nil hook is skipped.
type Hooks struct {
	// Update runs once per update event with the fixed step in milliseconds.
	Update func(ctx *Context, deltaMillis float64)

	// Draw runs after the registered shapes are drawn and before Display.
	Draw func(ctx *Context, w Window)

	// Diagnostic receives the formatted diagnostic line.
	Diagnostic func(ctx *Context, line string)
}

// Window is the render and input collaborator.
type Window interface {
	// PollEvents appends pending key and close notifications to q.
	PollEvents(q *core.EventQueue)

	// Size returns the drawable area in cells.
	Size() (width, height int)

	Clear()
	Draw(d shape.Drawable)

	// Display presents the finished frame.
	Display()
}
